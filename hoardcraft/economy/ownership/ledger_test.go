package ownership

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

type ledgerMocks struct {
	userCards *mock.MockUserCardRepository
	cards     *mock.MockCardRepository
	users     *mock.MockUserRepository
}

func newLedger(t *testing.T) (*Ledger, ledgerMocks) {
	ctrl := gomock.NewController(t)
	m := ledgerMocks{
		userCards: mock.NewMockUserCardRepository(ctrl),
		cards:     mock.NewMockCardRepository(ctrl),
		users:     mock.NewMockUserRepository(ctrl),
	}
	return NewLedger(m.userCards, m.cards, m.users), m
}

func TestLedger_Claim(t *testing.T) {
	tests := []struct {
		name       string
		inserted   bool
		insertErr  error
		want       bool
		wantErr    bool
	}{
		{name: "first claim succeeds", inserted: true, want: true},
		{name: "second claim is a no-op", inserted: false, want: false},
		{name: "storage failure", insertErr: errors.New("connection reset"), want: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, m := newLedger(t)
			m.users.EXPECT().EnsureServer(gomock.Any(), "200").Return(nil)
			m.users.EXPECT().EnsureUser(gomock.Any(), "100", "200").Return(nil)
			m.userCards.EXPECT().
				InsertIfAbsent(gomock.Any(), "100", "200", int64(7)).
				Return(tt.inserted, tt.insertErr)

			got, err := ledger.Claim(context.Background(), "100", "200", 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Claim() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Claim() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLedger_Declaim(t *testing.T) {
	card := &models.Card{ID: 7, Name: "Sylvanas Windrunner", Rarity: models.RarityLegendary}

	t.Run("removes an owned card", func(t *testing.T) {
		ledger, m := newLedger(t)
		m.cards.EXPECT().GetByName(gomock.Any(), "Sylvanas Windrunner").Return(card, nil)
		m.userCards.EXPECT().Delete(gomock.Any(), "100", "200", int64(7)).Return(true, nil)

		got, err := ledger.Declaim(context.Background(), "100", "200", "Sylvanas Windrunner")
		if err != nil {
			t.Fatalf("Declaim() error = %v", err)
		}
		if !got {
			t.Error("Declaim() = false, want true")
		}
	})

	t.Run("unowned card is a safe no-op", func(t *testing.T) {
		ledger, m := newLedger(t)
		m.cards.EXPECT().GetByName(gomock.Any(), "Sylvanas Windrunner").Return(card, nil)
		m.userCards.EXPECT().Delete(gomock.Any(), "100", "200", int64(7)).Return(false, nil)

		got, err := ledger.Declaim(context.Background(), "100", "200", "Sylvanas Windrunner")
		if err != nil {
			t.Fatalf("Declaim() error = %v", err)
		}
		if got {
			t.Error("Declaim() = true, want false")
		}
	})

	t.Run("unknown card name", func(t *testing.T) {
		ledger, m := newLedger(t)
		m.cards.EXPECT().GetByName(gomock.Any(), "No Such Card").Return(nil, sql.ErrNoRows)

		got, err := ledger.Declaim(context.Background(), "100", "200", "No Such Card")
		if err != nil {
			t.Fatalf("Declaim() error = %v", err)
		}
		if got {
			t.Error("Declaim() = true, want false")
		}
	})
}

func TestLedger_ClaimDeclaimRoundTrip(t *testing.T) {
	// declaim(claim(x)) restores the pre-claim state.
	ledger, m := newLedger(t)
	card := &models.Card{ID: 7, Name: "Sylvanas Windrunner", Rarity: models.RarityLegendary}

	m.users.EXPECT().EnsureServer(gomock.Any(), "200").Return(nil)
	m.users.EXPECT().EnsureUser(gomock.Any(), "100", "200").Return(nil)

	owned := false
	m.userCards.EXPECT().
		InsertIfAbsent(gomock.Any(), "100", "200", int64(7)).
		DoAndReturn(func(context.Context, string, string, int64) (bool, error) {
			if owned {
				return false, nil
			}
			owned = true
			return true, nil
		})
	m.cards.EXPECT().GetByName(gomock.Any(), "Sylvanas Windrunner").Return(card, nil)
	m.userCards.EXPECT().
		Delete(gomock.Any(), "100", "200", int64(7)).
		DoAndReturn(func(context.Context, string, string, int64) (bool, error) {
			was := owned
			owned = false
			return was, nil
		})
	m.userCards.EXPECT().
		Owns(gomock.Any(), "100", "200", int64(7)).
		DoAndReturn(func(context.Context, string, string, int64) (bool, error) {
			return owned, nil
		})

	if ok, _ := ledger.Claim(context.Background(), "100", "200", 7); !ok {
		t.Fatal("Claim() = false, want true")
	}
	if ok, _ := ledger.Declaim(context.Background(), "100", "200", "Sylvanas Windrunner"); !ok {
		t.Fatal("Declaim() = false, want true")
	}
	if got, _ := ledger.Owns(context.Background(), "100", "200", 7); got {
		t.Error("Owns() = true after declaim, want false")
	}
}

func TestLedger_ListOwned(t *testing.T) {
	ledger, m := newLedger(t)
	want := []*models.UserCard{
		{CardID: 2, Card: &models.Card{ID: 2, Name: "Arthas Menethil", Rarity: models.RarityLegendary}},
		{CardID: 1, Card: &models.Card{ID: 1, Name: "Jaina Proudmoore", Rarity: models.RarityRare}},
	}

	m.userCards.EXPECT().
		ListOwned(gomock.Any(), "100", "200", "scourge").
		Return(want, nil)

	got, err := ledger.ListOwned(context.Background(), "100", "200", "scourge")
	if err != nil {
		t.Fatalf("ListOwned() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("ListOwned() returned %d cards, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].CardID != want[i].CardID {
			t.Errorf("ListOwned()[%d].CardID = %d, want %d", i, got[i].CardID, want[i].CardID)
		}
	}
}
