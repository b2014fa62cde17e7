package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserCard is an ownership row. Existence of a row means the user owns the
// card on that server; a unique index on (user_id, server_id, card_id)
// guarantees at most one row per triple.
type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID       int64     `bun:"id,pk,autoincrement"`
	UserID   string    `bun:"user_id,notnull"`
	ServerID string    `bun:"server_id,notnull"`
	CardID   int64     `bun:"card_id,notnull"`
	Obtained time.Time `bun:"obtained,notnull,default:current_timestamp"`

	Card *Card `bun:"rel:belongs-to,join:card_id=id"`
}
