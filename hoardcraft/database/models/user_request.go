package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserRequest is the fixed-window draw counter for one (user, server) pair.
// The window is anchored at FirstRequestTime and resets once more than the
// cooldown window has elapsed.
type UserRequest struct {
	bun.BaseModel `bun:"table:user_requests,alias:ur"`

	ID               int64     `bun:"id,pk,autoincrement"`
	UserID           string    `bun:"user_id,notnull"`
	ServerID         string    `bun:"server_id,notnull"`
	FirstRequestTime time.Time `bun:"first_request_time,notnull"`
	RequestCount     int       `bun:"request_count,notnull,default:1"`
}
