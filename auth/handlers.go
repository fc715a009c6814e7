// This file holds the HTTP handlers for the auth endpoints. It is the
// controller layer: decode the payload, call the service, map errors at the
// boundary.
package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/pension-backend/apperror"
)

// loginCookieName is the session cookie carrying the encrypted mini-user.
const loginCookieName = "loginToken"

// Handlers wraps the auth Service and token codec to provide HTTP handlers.
type Handlers struct {
	service *Service
	crypter *Crypter
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service, crypter *Crypter) *Handlers {
	return &Handlers{service: service, crypter: crypter}
}

// HandleLogin godoc
// @Summary User Login
// @Description Verifies credentials, sets the loginToken cookie and returns the mini-user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.MiniUser "Login successful"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - any login failure"
// @Router /api/auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewAuthError("Failed to login", err))
			return
		}
		defer r.Body.Close()

		miniUser, err := h.service.Login(req.Username, req.Password)
		if err != nil {
			// The contract is 401 on any login failure, including internal ones.
			if !apperror.IsAuthError(err) {
				log.Printf("auth: login failed: %v", err)
				err = apperror.NewAuthError("Failed to login", err)
			}
			apperror.WriteError(w, r, err)
			return
		}

		token, err := h.crypter.Issue(miniUser)
		if err != nil {
			log.Printf("auth: failed to issue login token: %v", err)
			apperror.WriteError(w, r, apperror.NewAuthError("Failed to login", err))
			return
		}

		setLoginCookie(w, token)
		apperror.WriteJSON(w, http.StatusOK, miniUser)
	}
}

// HandleSignup godoc
// @Summary User Signup
// @Description Creates a user, logs it in and sets the loginToken cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signupBody body auth.SignupRequest true "User signup details"
// @Success 200 {object} auth.MiniUser "Signup successful, user logged in"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - any signup failure"
// @Router /api/auth/signup [post]
func (h *Handlers) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("Failed to signup", err))
			return
		}
		defer r.Body.Close()

		if _, err := h.service.Signup(req); err != nil {
			apperror.WriteError(w, r, asSignupFailure(err))
			return
		}

		// Signup itself does not authenticate; chain a login with the same
		// credentials to mint the token.
		miniUser, err := h.service.Login(req.Username, req.Password)
		if err != nil {
			apperror.WriteError(w, r, asSignupFailure(err))
			return
		}

		token, err := h.crypter.Issue(miniUser)
		if err != nil {
			apperror.WriteError(w, r, asSignupFailure(err))
			return
		}

		setLoginCookie(w, token)
		apperror.WriteJSON(w, http.StatusOK, miniUser)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description No-op acknowledgement; the client discards its cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.LogoutResponse
// @Router /api/auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, http.StatusOK, LogoutResponse{Msg: "Logged out successfully"})
	}
}

// asSignupFailure keeps the signup contract: 400 on any failure. Errors that
// already carry a 4xx status pass through; everything else collapses to a
// generic bad request.
func asSignupFailure(err error) error {
	if appErr, ok := apperror.FromError(err); ok && appErr.StatusCode() < http.StatusInternalServerError {
		return err
	}
	log.Printf("auth: signup failed: %v", err)
	return apperror.NewBadRequestError("Failed to signup", err)
}

// setLoginCookie attaches the token as a cross-site cookie. SameSite=None
// with Secure matches the previous deployment, where the SPA is served from
// a different origin.
func setLoginCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     loginCookieName,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})
}
