package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Server is a Discord guild known to the bot. Rows are created lazily the
// first time a guild is observed.
type Server struct {
	bun.BaseModel `bun:"table:servers,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ServerID  string    `bun:"server_id,notnull,unique"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
