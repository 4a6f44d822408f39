package model

// User is the identity held by an authenticated session.
// The JSON shape is also the persisted layout of the "user" storage entry.
type User struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
