// This file holds the HTTP handlers for the pension endpoints, including the
// visited-records cookie throttle on single-record reads.
package pension

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/user/pension-backend/apperror"
)

const (
	// visitedCookieName tracks the last few viewed pension ids per client.
	visitedCookieName = "visitedPensions"
	// visitedCookieMaxAge is the lifetime of the visited-records cookie.
	visitedCookieMaxAge = 5 // seconds
	// visitedLimit is the number of tracked visits that are still allowed.
	visitedLimit = 3
)

// Handlers provides the HTTP handlers for pension management.
type Handlers struct {
	service Service
}

// NewHandlers creates new pension Handlers.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the pension routes on the given router. The fixed
// paths are registered before the id wildcard so "export" and "stats" are
// never read as record ids.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListPensions())
	r.Get("/export", h.HandleExportPDF())
	r.Get("/stats", h.HandleStats())
	r.Get("/{pensionId}", h.HandleGetPension())
	r.Post("/", h.HandleSavePension())
	r.Put("/", h.HandleSavePension())
	r.Delete("/{pensionId}", h.HandleDeletePension())
}

// HandleListPensions godoc
// @Summary List pensions
// @Description Returns a filtered, sorted, paginated page of the pension collection.
// @Tags Pensions
// @Produce json
// @Param title query string false "case-insensitive substring on title"
// @Param fullName query string false "case-insensitive substring on fullName"
// @Param email query string false "case-insensitive substring on email"
// @Param employmentStatus query string false "exact match"
// @Param severity query int false "exact match"
// @Param married query bool false "boolean equality"
// @Param dateSort query string false "asc or desc sort on creation time"
// @Param sortBy query string false "sort field, default createdAt"
// @Param sortOrder query string false "asc or desc, default desc"
// @Param pageIndex query int false "1-based page, default 1"
// @Success 200 {object} pension.PaginatedPensions
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/pension [get]
func (h *Handlers) HandleListPensions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseQueryFilter(r)

		page, err := h.service.Query(r.Context(), filter)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, page)
	}
}

// parseQueryFilter coerces the loose query string into the typed filter at
// the boundary. Malformed numeric/boolean values impose no constraint, which
// is what the existing clients expect.
func parseQueryFilter(r *http.Request) QueryFilter {
	q := r.URL.Query()

	filter := QueryFilter{
		Title:            q.Get("title"),
		FullName:         q.Get("fullName"),
		Email:            q.Get("email"),
		EmploymentStatus: q.Get("employmentStatus"),
		SortBy:           q.Get("sortBy"),
		SortOrder:        q.Get("sortOrder"),
	}

	if s := q.Get("severity"); s != "" {
		if severity, err := strconv.Atoi(s); err == nil {
			filter.Severity = &severity
		}
	}
	if m := q.Get("married"); m != "" {
		if married, err := strconv.ParseBool(m); err == nil {
			filter.Married = &married
		}
	}
	// dateSort is the legacy alias for sorting on creation time.
	if ds := q.Get("dateSort"); ds != "" && filter.SortBy == "" {
		filter.SortBy = "createdAt"
		filter.SortOrder = ds
	}
	if p := q.Get("pageIndex"); p != "" {
		if page, err := strconv.Atoi(p); err == nil {
			filter.Page = page
		}
	}
	if l := q.Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}

	return filter
}

// HandleGetPension godoc
// @Summary Get pension by id
// @Description Returns a single record and refreshes the short-lived visitedPensions cookie. More than 3 tracked visits within the cookie window answers 401.
// @Tags Pensions
// @Produce json
// @Param pensionId path string true "pension id"
// @Success 200 {object} pension.Pension
// @Failure 401 {object} apperror.ErrorResponse "Wait for a bit"
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/pension/{pensionId} [get]
func (h *Handlers) HandleGetPension() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pensionID := chi.URLParam(r, "pensionId")

		record, err := h.service.GetByID(r.Context(), pensionID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		// Visited-records throttle, kept byte-for-byte compatible with the
		// previous deployment: the current id is prepended to the cookie, a
		// trailing empty entry is dropped, and more than visitedLimit tracked
		// entries answers 401 before the cookie is refreshed. Duplicate ids
		// count; the 5-second Max-Age is what resets the window.
		visited := ""
		if cookie, err := r.Cookie(visitedCookieName); err == nil {
			visited = cookie.Value
		}
		visited = pensionID + "," + visited

		entries := strings.Split(visited, ",")
		if len(entries) > 0 && entries[len(entries)-1] == "" {
			entries = entries[:len(entries)-1]
		}
		if len(entries) > visitedLimit {
			apperror.WriteError(w, r, apperror.NewRateLimitedError("Wait for a bit", nil))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:   visitedCookieName,
			Value:  visited,
			Path:   "/",
			MaxAge: visitedCookieMaxAge,
		})
		apperror.WriteJSON(w, http.StatusOK, record)
	}
}

// HandleExportPDF godoc
// @Summary Export the pension listing as PDF
// @Tags Pensions
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/pension/export [get]
func (h *Handlers) HandleExportPDF() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Render into a buffer first so a failure can still answer with the
		// JSON error envelope instead of a truncated PDF body.
		var buf bytes.Buffer
		if err := WritePDF(r.Context(), h.service, &buf); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=pension.pdf")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

// HandleStats godoc
// @Summary Aggregate pension statistics
// @Tags Pensions
// @Produce json
// @Success 200 {object} pension.Stats
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/pension/stats [get]
func (h *Handlers) HandleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.service.Stats(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, stats)
	}
}

// HandleSavePension godoc
// @Summary Create or update a pension
// @Description Saves a pension record; an _id in the body makes it an update. Unknown fields are dropped.
// @Tags Pensions
// @Accept json
// @Produce json
// @Param pensionBody body pension.SavePensionRequest true "Pension fields"
// @Success 200 {object} pension.Pension
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Failure 409 {object} apperror.ErrorResponse "email already exists"
// @Router /api/pension [post]
func (h *Handlers) HandleSavePension() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SavePensionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		var (
			saved *Pension
			err   error
		)
		if req.ID != "" {
			saved, err = h.service.Update(r.Context(), req.ID, req)
		} else {
			saved, err = h.service.Create(r.Context(), req)
		}
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, saved)
	}
}

// HandleDeletePension godoc
// @Summary Delete a pension
// @Tags Pensions
// @Produce json
// @Param pensionId path string true "pension id"
// @Success 200 {object} pension.RemoveResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/pension/{pensionId} [delete]
func (h *Handlers) HandleDeletePension() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pensionID := chi.URLParam(r, "pensionId")

		if err := h.service.Remove(r.Context(), pensionID); err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, RemoveResponse{Msg: fmt.Sprintf("Pension %s was removed", pensionID)})
	}
}
