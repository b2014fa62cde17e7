package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories/mock"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `
[[cards]]
name = "molten_giant"
collection = "classic"
rarity = "epic"

[[cards]]
name = "frost_imp"
collection = "classic"
rarity = "common"
title = "Chills"
`)

	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(file.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(file.Cards))
	}
	if file.Cards[0].Name != "molten_giant" || file.Cards[0].Rarity != "epic" {
		t.Errorf("unexpected first entry: %+v", file.Cards[0])
	}
	if file.Cards[1].Title != "Chills" {
		t.Errorf("expected title to survive decoding, got %q", file.Cards[1].Title)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing name",
			content: `
[[cards]]
collection = "classic"
rarity = "rare"
`,
		},
		{
			name: "missing collection",
			content: `
[[cards]]
name = "molten_giant"
rarity = "rare"
`,
		},
		{
			name: "unknown rarity",
			content: `
[[cards]]
name = "molten_giant"
collection = "classic"
rarity = "mythic"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeCatalog(t, tt.content)); err == nil {
				t.Fatal("expected Load to fail")
			}
		})
	}
}

func TestSeeder_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	collections := mock.NewMockCollectionRepository(ctrl)
	cards := mock.NewMockCardRepository(ctrl)

	file := &File{Cards: []Entry{
		{Name: "Molten_Giant", Collection: "Classic", Rarity: "epic"},
		{Name: "frost_imp", Collection: "classic", Rarity: "common"},
		{Name: "murloc_scout", Collection: "naxx", Rarity: "rare"},
	}}

	// Collection names are lowercased and each is ensured once.
	collections.EXPECT().Ensure(gomock.Any(), "classic").
		Return(&models.Collection{ID: 1, Name: "classic"}, nil).
		Times(1)
	collections.EXPECT().Ensure(gomock.Any(), "naxx").
		Return(&models.Collection{ID: 2, Name: "naxx"}, nil).
		Times(1)

	cards.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got []*models.Card) (int, error) {
			if len(got) != 3 {
				t.Fatalf("expected 3 cards, got %d", len(got))
			}
			if got[0].Name != "molten_giant" {
				t.Errorf("expected lowercased name, got %q", got[0].Name)
			}
			if got[0].CollectionID != 1 || got[2].CollectionID != 2 {
				t.Errorf("collection ids not resolved: %d, %d", got[0].CollectionID, got[2].CollectionID)
			}
			return len(got), nil
		})

	n, err := NewSeeder(collections, cards).Seed(context.Background(), file)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 seeded cards, got %d", n)
	}
}
