package model

import "time"

// Session carries metadata about the current login. It lives and dies with User.
// The JSON shape is also the persisted layout of the "userSession" storage entry.
type Session struct {
	Location  string    `json:"location"`
	LastLogin time.Time `json:"lastLogin"`
}
