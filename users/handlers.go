// This file holds the HTTP handlers for the user CRUD endpoints.
package users

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/pension-backend/apperror"
)

// Store is the slice of the user store the handlers need. *FileStore
// satisfies it; tests substitute fakes.
type Store interface {
	Query(filter QueryFilter) (*PaginatedUsers, error)
	GetByID(id string) (*User, error)
	Create(u *User) (*User, error)
	Update(id string, patch Patch) (*User, error)
	Remove(id string) error
}

// Handlers provides the HTTP handlers for user management.
type Handlers struct {
	store Store
}

// NewHandlers creates new user Handlers.
func NewHandlers(store Store) *Handlers {
	return &Handlers{store: store}
}

// RegisterRoutes mounts the user CRUD routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListUsers())
	r.Get("/{userId}", h.HandleGetUser())
	r.Post("/", h.HandleSaveUser())
	r.Put("/", h.HandleSaveUser())
	r.Delete("/{userId}", h.HandleDeleteUser())
}

// HandleListUsers godoc
// @Summary List users
// @Description Returns a filtered, paginated page of the user collection.
// @Tags Users
// @Produce json
// @Param fullname query string false "case-insensitive substring on fullname"
// @Param username query string false "case-insensitive substring on username"
// @Param score query number false "minimum score"
// @Param pageIndex query int false "1-based page, default 1"
// @Success 200 {object} users.PaginatedUsers
// @Failure 400 {object} apperror.ErrorResponse
// @Router /api/user [get]
func (h *Handlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := QueryFilter{
			Fullname: q.Get("fullname"),
			Username: q.Get("username"),
		}
		// Numeric coercion happens here at the boundary; malformed numbers
		// fall back to "no constraint" exactly as the loose clients expect.
		if s := q.Get("score"); s != "" {
			if min, err := strconv.ParseFloat(s, 64); err == nil {
				filter.MinScore = min
			}
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

		page, err := h.store.Query(filter)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, page)
	}
}

// HandleGetUser godoc
// @Summary Get user by id
// @Tags Users
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {object} users.User
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/user/{userId} [get]
func (h *Handlers) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		user, err := h.store.GetByID(userID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleSaveUser godoc
// @Summary Create or update a user
// @Description Saves a user record; an _id in the body makes it an update.
// @Tags Users
// @Accept json
// @Produce json
// @Param userBody body users.SaveUserRequest true "User fields"
// @Success 200 {object} users.User
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/user [post]
func (h *Handlers) HandleSaveUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		var (
			saved *User
			err   error
		)
		if req.ID != "" {
			saved, err = h.store.Update(req.ID, req.toPatch())
		} else {
			saved, err = h.store.Create(req.toUser())
		}
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, saved)
	}
}

// HandleDeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {object} users.RemoveResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/user/{userId} [delete]
func (h *Handlers) HandleDeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		if err := h.store.Remove(userID); err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, RemoveResponse{Msg: fmt.Sprintf("User %s was removed", userID)})
	}
}
