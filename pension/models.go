// Package pension encapsulates the pension-record collection: a
// PostgreSQL-backed record store with filtered, paginated queries, CRUD
// handlers, a PDF export and an aggregate stats view.
package pension

import (
	"encoding/json"
	"time"
)

// Pension represents a pension record. Optional fields are pointers so a
// NULL column and an absent JSON field stay distinguishable from zero
// values. CreatedBy passes through whatever projection the client attached
// at creation time.
type Pension struct {
	ID               string          `json:"_id"`
	Title            *string         `json:"title,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Severity         *int            `json:"severity,omitempty"`
	FullName         *string         `json:"fullName,omitempty"`
	Email            *string         `json:"email,omitempty"`
	Phone            *string         `json:"phone,omitempty"`
	DateOfBirth      *time.Time      `json:"dateOfBirth,omitempty"`
	EmploymentStatus *string         `json:"employmentStatus,omitempty"`
	NumberOfChildren *int            `json:"numberOfChildren,omitempty"`
	Married          *bool           `json:"married,omitempty"`
	Address          *string         `json:"address,omitempty"`
	Profession       *string         `json:"profession,omitempty"`
	PlaceOfWork      *string         `json:"placeOfWork,omitempty"`
	CurrentIncome    *float64        `json:"currentIncome,omitempty"`
	CreatedBy        json.RawMessage `json:"createdBy,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Stats is the aggregate view over the whole collection.
type Stats struct {
	TotalPensions int     `json:"totalPensions"`
	AvgIncome     float64 `json:"avgIncome"`
	AvgAge        float64 `json:"avgAge"`
	MarriedCount  int     `json:"marriedCount"`
	AvgChildren   float64 `json:"avgChildren"`
}
