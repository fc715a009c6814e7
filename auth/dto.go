// This file defines the request payloads for the auth endpoints. Each
// endpoint has an explicit schema; fields outside it are ignored by the JSON
// decoder rather than reaching business logic.
package auth

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"muki123"`
	Password string `json:"password" example:"strongpassword123"`
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Fullname string `json:"fullname" example:"Muki Ja"`
	Username string `json:"username" example:"muki123"`
	Password string `json:"password" example:"strongpassword123"`
	IsAdmin  bool   `json:"isAdmin" example:"false"`
}

// LogoutResponse acknowledges a logout. The endpoint is a no-op; the client
// discards its cookie.
type LogoutResponse struct {
	Msg string `json:"msg" example:"Logged out successfully"`
}
