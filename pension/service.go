package pension

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/pension-backend/apperror"
)

// defaultPageSize is the page window for pension listings, the default the
// document layer used before.
const defaultPageSize = 20

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// defaultCreatedBy is attached to records created without an owner projection.
var defaultCreatedBy = json.RawMessage(`{"_id":1,"fullname":"anonymous user"}`)

// QueryFilter narrows a pension listing. All fields are optional; absent
// fields impose no constraint.
type QueryFilter struct {
	Title            string // case-insensitive substring
	FullName         string // case-insensitive substring
	Email            string // case-insensitive substring
	EmploymentStatus string // exact match
	Severity         *int   // exact match
	Married          *bool  // boolean equality

	SortBy    string // whitelisted field name, default creation time
	SortOrder string // "asc" or "desc", default "desc"
	Page      int    // 1-based, default 1
	Limit     int    // default 20
}

// PaginatedPensions is one page of a filtered pension listing. Total is
// counted before pagination and Pages = ceil(Total/limit).
type PaginatedPensions struct {
	Items []*Pension `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"`
}

// Service defines the pension-record operations. Handlers depend on this
// interface so tests can substitute fakes.
type Service interface {
	Query(ctx context.Context, filter QueryFilter) (*PaginatedPensions, error)
	GetByID(ctx context.Context, id string) (*Pension, error)
	Create(ctx context.Context, req SavePensionRequest) (*Pension, error)
	Update(ctx context.Context, id string, req SavePensionRequest) (*Pension, error)
	Remove(ctx context.Context, id string) error
	Stats(ctx context.Context) (*Stats, error)
}

type serviceImpl struct {
	db *pgxpool.Pool
}

// NewService creates the pgx-backed pension Service.
func NewService(db *pgxpool.Pool) Service {
	return &serviceImpl{db: db}
}

// pensionColumns is the scan order shared by every SELECT/RETURNING below.
const pensionColumns = `id::text, title, description, severity, full_name, email, phone,
	date_of_birth, employment_status, number_of_children, married, address,
	profession, place_of_work, current_income, created_by, created_at, updated_at`

// sortColumns whitelists the sortable fields. Anything else falls back to
// creation time.
var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"title":         "title",
	"severity":      "severity",
	"fullName":      "full_name",
	"email":         "email",
	"dateOfBirth":   "date_of_birth",
	"currentIncome": "current_income",
}

// buildWhere translates the filter into a deterministic predicate set.
// Substring matches are case-insensitive (ILIKE), enumerated and boolean
// fields match exactly.
func buildWhere(filter QueryFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argID := 1

	addLike := func(column, value string) {
		if value == "" {
			return
		}
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, argID))
		args = append(args, "%"+value+"%")
		argID++
	}

	addLike("title", filter.Title)
	addLike("full_name", filter.FullName)
	addLike("email", filter.Email)

	if filter.EmploymentStatus != "" {
		conditions = append(conditions, fmt.Sprintf("employment_status = $%d", argID))
		args = append(args, filter.EmploymentStatus)
		argID++
	}
	if filter.Severity != nil {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", argID))
		args = append(args, *filter.Severity)
		argID++
	}
	if filter.Married != nil {
		conditions = append(conditions, fmt.Sprintf("married = $%d", argID))
		args = append(args, *filter.Married)
		argID++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// buildOrderBy resolves the sort field and direction against the whitelist.
// The id column is appended so rows with equal sort keys keep a stable order
// across pages.
func buildOrderBy(filter QueryFilter) string {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") || filter.SortOrder == "1" {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id", column, direction)
}

// Query returns the page window [skip, skip+limit) of the filtered, sorted
// collection plus the total counted before pagination.
func (s *serviceImpl) Query(ctx context.Context, filter QueryFilter) (*PaginatedPensions, error) {
	where, args := buildWhere(filter)

	var total int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM pensions"+where, args...).Scan(&total); err != nil {
		log.Printf("pension: failed to count pensions: %v", err)
		return nil, apperror.NewDatabaseError("failed to get pensions", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	skip := (page - 1) * limit

	query := "SELECT " + pensionColumns + " FROM pensions" + where + buildOrderBy(filter) +
		fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	rows, err := s.db.Query(ctx, query, append(args, skip, limit)...)
	if err != nil {
		log.Printf("pension: failed to query pensions: %v", err)
		return nil, apperror.NewDatabaseError("failed to get pensions", err)
	}
	defer rows.Close()

	items := make([]*Pension, 0, limit)
	for rows.Next() {
		p, err := scanPension(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to read pension row", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read pension rows", err)
	}

	return &PaginatedPensions{
		Items: items,
		Total: total,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// GetByID returns a single pension record.
func (s *serviceImpl) GetByID(ctx context.Context, id string) (*Pension, error) {
	if _, err := uuid.Parse(id); err != nil {
		// An id the database could never have assigned is just "not found",
		// not a malformed-query error.
		return nil, apperror.NewNotFoundError(fmt.Sprintf("pension %s not found", id), nil)
	}

	row := s.db.QueryRow(ctx, "SELECT "+pensionColumns+" FROM pensions WHERE id = $1", id)
	p, err := scanPension(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("pension %s not found", id), nil)
		}
		log.Printf("pension: failed to get pension %s: %v", id, err)
		return nil, apperror.NewDatabaseError("failed to get pension", err)
	}
	return p, nil
}

// Create persists a new record. Identity and timestamps are assigned by the
// database; a missing owner projection gets the anonymous default.
func (s *serviceImpl) Create(ctx context.Context, req SavePensionRequest) (*Pension, error) {
	createdBy := req.CreatedBy
	if len(createdBy) == 0 {
		createdBy = defaultCreatedBy
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO pensions (title, description, severity, full_name, email, phone,
			date_of_birth, employment_status, number_of_children, married, address,
			profession, place_of_work, current_income, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+pensionColumns,
		req.Title, req.Description, req.Severity, req.FullName, req.Email, req.Phone,
		req.DateOfBirth, req.EmploymentStatus, req.NumberOfChildren, req.Married, req.Address,
		req.Profession, req.PlaceOfWork, req.CurrentIncome, createdBy,
	)

	p, err := scanPension(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("email already exists", nil)
		}
		log.Printf("pension: failed to create pension: %v", err)
		return nil, apperror.NewDatabaseError("failed to save pension", err)
	}

	log.Printf("pension: created pension %s", p.ID)
	return p, nil
}

// Update replaces the named fields of an existing record and bumps
// updated_at. Fields the patch leaves nil keep their stored value.
func (s *serviceImpl) Update(ctx context.Context, id string, req SavePensionRequest) (*Pension, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("pension %s not found", id), nil)
	}

	setClauses := []string{"updated_at = now()"}
	var args []interface{}
	argID := 1

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Severity != nil {
		set("severity", *req.Severity)
	}
	if req.FullName != nil {
		set("full_name", *req.FullName)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.DateOfBirth != nil {
		set("date_of_birth", *req.DateOfBirth)
	}
	if req.EmploymentStatus != nil {
		set("employment_status", *req.EmploymentStatus)
	}
	if req.NumberOfChildren != nil {
		set("number_of_children", *req.NumberOfChildren)
	}
	if req.Married != nil {
		set("married", *req.Married)
	}
	if req.Address != nil {
		set("address", *req.Address)
	}
	if req.Profession != nil {
		set("profession", *req.Profession)
	}
	if req.PlaceOfWork != nil {
		set("place_of_work", *req.PlaceOfWork)
	}
	if req.CurrentIncome != nil {
		set("current_income", *req.CurrentIncome)
	}
	if len(req.CreatedBy) > 0 {
		set("created_by", req.CreatedBy)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE pensions SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argID, pensionColumns)

	p, err := scanPension(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("pension %s not found", id), nil)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("email already exists", nil)
		}
		log.Printf("pension: failed to update pension %s: %v", id, err)
		return nil, apperror.NewDatabaseError("failed to save pension", err)
	}

	log.Printf("pension: updated pension %s", id)
	return p, nil
}

// Remove deletes a record.
func (s *serviceImpl) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewNotFoundError(fmt.Sprintf("pension %s not found", id), nil)
	}

	tag, err := s.db.Exec(ctx, "DELETE FROM pensions WHERE id = $1", id)
	if err != nil {
		log.Printf("pension: failed to remove pension %s: %v", id, err)
		return apperror.NewDatabaseError("failed to remove pension", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("pension %s not found", id), nil)
	}

	log.Printf("pension: removed pension %s", id)
	return nil
}

// Stats aggregates the whole collection in a single statement.
func (s *serviceImpl) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COALESCE(AVG(current_income), 0),
			COALESCE(AVG(EXTRACT(EPOCH FROM (now() - date_of_birth)) / 31557600), 0),
			COUNT(*) FILTER (WHERE married),
			COALESCE(AVG(number_of_children), 0)
		FROM pensions`,
	).Scan(&stats.TotalPensions, &stats.AvgIncome, &stats.AvgAge, &stats.MarriedCount, &stats.AvgChildren)
	if err != nil {
		log.Printf("pension: failed to aggregate stats: %v", err)
		return nil, apperror.NewDatabaseError("failed to get pension stats", err)
	}
	return &stats, nil
}

// scanPension reads one row in pensionColumns order.
func scanPension(row pgx.Row) (*Pension, error) {
	var p Pension
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Severity, &p.FullName, &p.Email, &p.Phone,
		&p.DateOfBirth, &p.EmploymentStatus, &p.NumberOfChildren, &p.Married, &p.Address,
		&p.Profession, &p.PlaceOfWork, &p.CurrentIncome, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
