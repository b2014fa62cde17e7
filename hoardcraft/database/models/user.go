package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User identity is scoped per server: the same Discord account on two
// servers is two economy participants. Rows are created lazily on the first
// economic action.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull"`
	ServerID  string    `bun:"server_id,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
