package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Shop is the cached per-server shop triple. Regenerated at most once per
// rotation period; an admin reset deletes the row to force regeneration.
type Shop struct {
	bun.BaseModel `bun:"table:shops,alias:sh"`

	ID          int64     `bun:"id,pk,autoincrement"`
	ServerID    string    `bun:"server_id,notnull,unique"`
	LastUpdated time.Time `bun:"last_updated,notnull"`
	CardID1     int64     `bun:"card_id1,notnull"`
	CardID2     int64     `bun:"card_id2"`
	CardID3     int64     `bun:"card_id3"`
}

// CardIDs returns the stored card references, skipping empty slots when the
// catalog had fewer than three cards at generation time.
func (s *Shop) CardIDs() []int64 {
	ids := make([]int64, 0, 3)
	for _, id := range []int64{s.CardID1, s.CardID2, s.CardID3} {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
