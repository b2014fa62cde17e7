// Package catalog loads card definitions from a TOML file and seeds them
// into the database. Seeding is idempotent: existing cards are updated in
// place, never duplicated.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories"
)

type File struct {
	Cards []Entry `toml:"cards"`
}

type Entry struct {
	Name       string `toml:"name"`
	Collection string `toml:"collection"`
	Rarity     string `toml:"rarity"`
	Title      string `toml:"title"`
	Quote      string `toml:"quote"`
	ImageURL   string `toml:"image_url"`
}

func validRarity(r models.Rarity) bool {
	switch r {
	case models.RarityCommon, models.RarityUncommon, models.RarityRare,
		models.RarityEpic, models.RarityLegendary:
		return true
	}
	return false
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	var file File
	if err := toml.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i, entry := range file.Cards {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if strings.TrimSpace(entry.Collection) == "" {
			return nil, fmt.Errorf("card %q has no collection", entry.Name)
		}
		if !validRarity(models.Rarity(entry.Rarity)) {
			return nil, fmt.Errorf("card %q has unknown rarity %q", entry.Name, entry.Rarity)
		}
	}

	return &file, nil
}

type Seeder struct {
	collections repositories.CollectionRepository
	cards       repositories.CardRepository
}

func NewSeeder(collections repositories.CollectionRepository, cards repositories.CardRepository) *Seeder {
	return &Seeder{collections: collections, cards: cards}
}

// Seed upserts every entry in the file, creating collections on demand.
func (s *Seeder) Seed(ctx context.Context, file *File) (int, error) {
	collectionIDs := make(map[string]int64)

	cards := make([]*models.Card, 0, len(file.Cards))
	for _, entry := range file.Cards {
		colName := strings.ToLower(entry.Collection)
		colID, ok := collectionIDs[colName]
		if !ok {
			col, err := s.collections.Ensure(ctx, colName)
			if err != nil {
				return 0, fmt.Errorf("failed to ensure collection %q: %w", colName, err)
			}
			colID = col.ID
			collectionIDs[colName] = colID
		}

		cards = append(cards, &models.Card{
			Name:         strings.ToLower(entry.Name),
			CollectionID: colID,
			Rarity:       models.Rarity(entry.Rarity),
			Title:        entry.Title,
			Quote:        entry.Quote,
			ImageURL:     entry.ImageURL,
		})
	}

	n, err := s.cards.BulkCreate(ctx, cards)
	if err != nil {
		return 0, err
	}

	slog.Info("Catalog seeded",
		slog.Int("cards", n),
		slog.Int("collections", len(collectionIDs)))
	return n, nil
}
