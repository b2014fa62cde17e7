package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Rarity is the ordinal tier of a card. It drives display color, the dust
// value of duplicate draws and the shop crafting cost.
type Rarity string

const (
	RarityLegendary Rarity = "legendary"
	RarityEpic      Rarity = "epic"
	RarityRare      Rarity = "rare"
	RarityUncommon  Rarity = "uncommon"
	RarityCommon    Rarity = "common"
)

// Rank orders rarities from legendary (0) to common (4). Unknown rarities
// sort last.
func (r Rarity) Rank() int {
	switch r {
	case RarityLegendary:
		return 0
	case RarityEpic:
		return 1
	case RarityRare:
		return 2
	case RarityUncommon:
		return 3
	case RarityCommon:
		return 4
	default:
		return 5
	}
}

type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Name         string    `bun:"name,notnull,unique"`
	CollectionID int64     `bun:"collection_id,notnull"`
	Rarity       Rarity    `bun:"rarity,notnull"`
	Title        string    `bun:"title,type:text,default:''"`
	Quote        string    `bun:"quote,type:text,default:''"`
	ImageURL     string    `bun:"image_url,type:text,default:''"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`

	Collection *Collection `bun:"rel:belongs-to,join:collection_id=id"`
}
