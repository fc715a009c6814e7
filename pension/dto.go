package pension

import (
	"encoding/json"
	"time"
)

// SavePensionRequest is the explicit schema for pension create/update bodies.
// Pointer fields distinguish "absent" from zero values and double as the
// field whitelist: anything outside this set is dropped by the decoder and
// never reaches the store. When ID is set the request is an update.
type SavePensionRequest struct {
	ID               string          `json:"_id"`
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	Severity         *int            `json:"severity"`
	FullName         *string         `json:"fullName"`
	Email            *string         `json:"email"`
	Phone            *string         `json:"phone"`
	DateOfBirth      *time.Time      `json:"dateOfBirth"`
	EmploymentStatus *string         `json:"employmentStatus"`
	NumberOfChildren *int            `json:"numberOfChildren"`
	Married          *bool           `json:"married"`
	Address          *string         `json:"address"`
	Profession       *string         `json:"profession"`
	PlaceOfWork      *string         `json:"placeOfWork"`
	CurrentIncome    *float64        `json:"currentIncome"`
	CreatedBy        json.RawMessage `json:"createdBy"`
}

// RemoveResponse acknowledges a deletion.
type RemoveResponse struct {
	Msg string `json:"msg" example:"Pension 7d5b... was removed"`
}
