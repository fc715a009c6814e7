package users

// SaveUserRequest is the explicit schema for user create/update bodies.
// Pointer fields distinguish "absent" from zero values; unknown fields in the
// input are dropped by the decoder. When ID is set the request is an update,
// otherwise a create.
type SaveUserRequest struct {
	ID       string   `json:"_id"`
	Fullname *string  `json:"fullname"`
	Username *string  `json:"username"`
	Password *string  `json:"password"`
	Score    *float64 `json:"score"`
	IsAdmin  *bool    `json:"isAdmin"`
}

func (r SaveUserRequest) toPatch() Patch {
	return Patch{
		Fullname: r.Fullname,
		Username: r.Username,
		Password: r.Password,
		Score:    r.Score,
		IsAdmin:  r.IsAdmin,
	}
}

func (r SaveUserRequest) toUser() *User {
	u := &User{ID: r.ID}
	if r.Fullname != nil {
		u.Fullname = *r.Fullname
	}
	if r.Username != nil {
		u.Username = *r.Username
	}
	if r.Password != nil {
		u.Password = *r.Password
	}
	if r.Score != nil {
		u.Score = *r.Score
	}
	if r.IsAdmin != nil {
		u.IsAdmin = *r.IsAdmin
	}
	return u
}

// RemoveResponse acknowledges a deletion.
type RemoveResponse struct {
	Msg string `json:"msg" example:"User aa1f3c was removed"`
}
