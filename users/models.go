// Package users encapsulates the user collection: a JSON-file-backed record
// store with filtered, paginated queries and CRUD handlers.
package users

// User represents a user record.
// The `json:"-"` tag on Password keeps the bcrypt hash out of every API
// response; the file store persists it through its own representation.
type User struct {
	ID       string  `json:"_id"`
	Fullname string  `json:"fullname"`
	Username string  `json:"username"`
	Password string  `json:"-"`
	Score    float64 `json:"score"`
	IsAdmin  bool    `json:"isAdmin"`
}

// storedUser is the persisted form of a User. Unlike the API form it carries
// the hashed password, which must survive process restarts.
type storedUser struct {
	ID       string  `json:"_id"`
	Fullname string  `json:"fullname"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Score    float64 `json:"score"`
	IsAdmin  bool    `json:"isAdmin"`
}

func (s storedUser) toUser() *User {
	return &User{
		ID:       s.ID,
		Fullname: s.Fullname,
		Username: s.Username,
		Password: s.Password,
		Score:    s.Score,
		IsAdmin:  s.IsAdmin,
	}
}

func toStored(u *User) storedUser {
	return storedUser{
		ID:       u.ID,
		Fullname: u.Fullname,
		Username: u.Username,
		Password: u.Password,
		Score:    u.Score,
		IsAdmin:  u.IsAdmin,
	}
}

// Patch names the fields a save request may replace. Nil fields leave the
// stored value untouched; anything outside this set is dropped at the DTO
// boundary before it gets here.
type Patch struct {
	Fullname *string
	Username *string
	Password *string
	Score    *float64
	IsAdmin  *bool
}
