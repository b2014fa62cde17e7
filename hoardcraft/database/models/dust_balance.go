package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DustBalance holds a user's spendable dust on one server. The balance is
// never negative; debits are conditional updates guarded by balance >= cost.
type DustBalance struct {
	bun.BaseModel `bun:"table:dust_balances,alias:db"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull"`
	ServerID  string    `bun:"server_id,notnull"`
	Balance   int64     `bun:"balance,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
