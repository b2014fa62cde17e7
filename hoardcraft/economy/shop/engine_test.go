package shop

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

type engineMocks struct {
	shops *mock.MockShopRepository
	cards *mock.MockCardRepository
	users *mock.MockUserRepository
}

func newEngine(t *testing.T, now time.Time) (*Engine, engineMocks) {
	ctrl := gomock.NewController(t)
	m := engineMocks{
		shops: mock.NewMockShopRepository(ctrl),
		cards: mock.NewMockCardRepository(ctrl),
		users: mock.NewMockUserRepository(ctrl),
	}
	e := NewEngine(m.shops, m.cards, m.users)
	e.now = func() time.Time { return now }
	return e, m
}

var catalog = []*models.Card{
	{ID: 1, Name: "Jaina Proudmoore", Rarity: models.RarityLegendary},
	{ID: 2, Name: "Arthas Menethil", Rarity: models.RarityEpic},
	{ID: 3, Name: "Thrall", Rarity: models.RarityCommon},
}

func TestCost(t *testing.T) {
	tests := []struct {
		rarity models.Rarity
		want   int64
	}{
		{models.RarityLegendary, 1000},
		{models.RarityEpic, 400},
		{models.RarityRare, 200},
		{models.RarityUncommon, 100},
		{models.RarityCommon, 50},
		{models.Rarity("mythic"), 50},
	}
	for _, tt := range tests {
		if got := Cost(tt.rarity); got != tt.want {
			t.Errorf("Cost(%q) = %d, want %d", tt.rarity, got, tt.want)
		}
	}
}

func TestEngine_Inventory_GeneratesWhenAbsent(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e, m := newEngine(t, now)

	m.shops.EXPECT().Get(gomock.Any(), "200").Return(nil, sql.ErrNoRows)
	m.cards.EXPECT().GetRandomSample(gomock.Any(), 3).Return(catalog, nil)
	m.shops.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), time.Time{}).
		DoAndReturn(func(_ context.Context, shop *models.Shop, _ time.Time) (bool, error) {
			if shop.ServerID != "200" {
				t.Errorf("Upsert ServerID = %q, want %q", shop.ServerID, "200")
			}
			if !shop.LastUpdated.Equal(now) {
				t.Errorf("Upsert LastUpdated = %v, want %v", shop.LastUpdated, now)
			}
			if shop.CardID1 != 1 || shop.CardID2 != 2 || shop.CardID3 != 3 {
				t.Errorf("Upsert card slots = %d,%d,%d, want 1,2,3", shop.CardID1, shop.CardID2, shop.CardID3)
			}
			return true, nil
		})

	listings, err := e.Inventory(context.Background(), "200")
	if err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	if len(listings) != 3 {
		t.Fatalf("Inventory() returned %d listings, want 3", len(listings))
	}
	wantCosts := []int64{1000, 400, 50}
	for i, l := range listings {
		if l.Cost != wantCosts[i] {
			t.Errorf("listing %d cost = %d, want %d", i, l.Cost, wantCosts[i])
		}
	}
}

func TestEngine_Inventory_StableWithinRotation(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e, m := newEngine(t, now)

	stored := &models.Shop{
		ServerID:    "200",
		LastUpdated: now.Add(-30 * time.Minute),
		CardID1:     3,
		CardID2:     1,
		CardID3:     2,
	}
	m.shops.EXPECT().Get(gomock.Any(), "200").Return(stored, nil).Times(2)
	m.cards.EXPECT().
		GetByIDs(gomock.Any(), []int64{3, 1, 2}).
		Return(catalog, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		listings, err := e.Inventory(context.Background(), "200")
		if err != nil {
			t.Fatalf("Inventory() #%d error = %v", i+1, err)
		}
		// Stored slot order is preserved across reads.
		wantIDs := []int64{3, 1, 2}
		for j, l := range listings {
			if l.Card.ID != wantIDs[j] {
				t.Errorf("Inventory() #%d listing %d = card %d, want %d", i+1, j, l.Card.ID, wantIDs[j])
			}
		}
	}
}

func TestEngine_Inventory_RegeneratesAfterRotation(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e, m := newEngine(t, now)

	stale := &models.Shop{
		ServerID:    "200",
		LastUpdated: now.Add(-time.Hour),
		CardID1:     1,
		CardID2:     2,
		CardID3:     3,
	}
	m.shops.EXPECT().Get(gomock.Any(), "200").Return(stale, nil)
	m.cards.EXPECT().GetRandomSample(gomock.Any(), 3).Return(catalog[:2], nil)
	m.shops.EXPECT().Upsert(gomock.Any(), gomock.Any(), stale.LastUpdated).Return(true, nil)

	listings, err := e.Inventory(context.Background(), "200")
	if err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	if len(listings) != 2 {
		t.Errorf("Inventory() returned %d listings, want 2 (small catalog)", len(listings))
	}
}

func TestEngine_Inventory_ServesConcurrentWinner(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e, m := newEngine(t, now)

	stale := &models.Shop{
		ServerID:    "200",
		LastUpdated: now.Add(-2 * time.Hour),
		CardID1:     1,
		CardID2:     2,
		CardID3:     3,
	}
	winner := &models.Shop{
		ServerID:    "200",
		LastUpdated: now,
		CardID1:     3,
		CardID2:     2,
		CardID3:     1,
	}

	// Another writer rotates between our read and our guarded write, so
	// the store rejects our triple and we serve the winner's instead.
	m.shops.EXPECT().Get(gomock.Any(), "200").Return(stale, nil)
	m.cards.EXPECT().GetRandomSample(gomock.Any(), 3).Return(catalog, nil)
	m.shops.EXPECT().Upsert(gomock.Any(), gomock.Any(), stale.LastUpdated).Return(false, nil)
	m.shops.EXPECT().Get(gomock.Any(), "200").Return(winner, nil)
	m.cards.EXPECT().GetByIDs(gomock.Any(), []int64{3, 2, 1}).Return(catalog, nil)

	listings, err := e.Inventory(context.Background(), "200")
	if err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	wantIDs := []int64{3, 2, 1}
	if len(listings) != len(wantIDs) {
		t.Fatalf("Inventory() returned %d listings, want %d", len(listings), len(wantIDs))
	}
	for i, l := range listings {
		if l.Card.ID != wantIDs[i] {
			t.Errorf("listing %d = card %d, want %d", i, l.Card.ID, wantIDs[i])
		}
	}
}

func TestEngine_Inventory_EmptyCatalog(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e, m := newEngine(t, now)

	m.shops.EXPECT().Get(gomock.Any(), "200").Return(nil, sql.ErrNoRows)
	m.cards.EXPECT().GetRandomSample(gomock.Any(), 3).Return(nil, nil)

	listings, err := e.Inventory(context.Background(), "200")
	if err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("Inventory() returned %d listings, want 0", len(listings))
	}
}

func TestEngine_Craft(t *testing.T) {
	tests := []struct {
		name      string
		purchased bool
		storeErr  error
		want      bool
		wantErr   bool
	}{
		{name: "success", purchased: true, want: true},
		{name: "denied", purchased: false, want: false},
		{name: "storage failure", storeErr: errors.New("connection reset"), want: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
			e, m := newEngine(t, now)

			m.users.EXPECT().EnsureServer(gomock.Any(), "200").Return(nil)
			m.users.EXPECT().EnsureUser(gomock.Any(), "100", "200").Return(nil)
			m.shops.EXPECT().
				CraftPurchase(gomock.Any(), "100", "200", int64(1), int64(1000)).
				Return(tt.purchased, tt.storeErr)

			got, err := e.Craft(context.Background(), "100", "200", 1, 1000)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Craft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Craft() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Reset(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e, m := newEngine(t, now)

	m.shops.EXPECT().Delete(gomock.Any(), "200").Return(true, nil)

	cleared, err := e.Reset(context.Background(), "200")
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if !cleared {
		t.Error("Reset() = false, want true")
	}

	// Next read regenerates immediately.
	m.shops.EXPECT().Get(gomock.Any(), "200").Return(nil, sql.ErrNoRows)
	m.cards.EXPECT().GetRandomSample(gomock.Any(), 3).Return(catalog, nil)
	m.shops.EXPECT().Upsert(gomock.Any(), gomock.Any(), time.Time{}).Return(true, nil)

	listings, err := e.Inventory(context.Background(), "200")
	if err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	if len(listings) != 3 {
		t.Errorf("Inventory() returned %d listings, want 3", len(listings))
	}
}
