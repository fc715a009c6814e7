// Package auth is responsible for the authentication surface: the login-token
// codec, credential verification, the session cookie handlers and the
// middleware that turns a cookie back into a principal.
package auth

// MiniUser is the password-stripped projection of a user record. It is the
// only representation ever placed into a token or returned from login/signup.
type MiniUser struct {
	ID       string  `json:"_id"`
	Username string  `json:"username"`
	Fullname string  `json:"fullname"`
	Score    float64 `json:"score"`
	IsAdmin  bool    `json:"isAdmin"`
}
