// Package ownership implements the ledger of who owns which card on which
// server. Claim and de-claim are inverse operations; both are safe no-ops
// when the precondition does not hold.
package ownership

import (
	"context"
	"log/slog"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories"
)

type Ledger struct {
	userCards repositories.UserCardRepository
	cards     repositories.CardRepository
	users     repositories.UserRepository
}

func NewLedger(
	userCards repositories.UserCardRepository,
	cards repositories.CardRepository,
	users repositories.UserRepository,
) *Ledger {
	return &Ledger{
		userCards: userCards,
		cards:     cards,
		users:     users,
	}
}

// Claim takes ownership of the card for the user on the server. False with
// a nil error means the card was already owned (idempotent no-op); an error
// means the store failed.
func (l *Ledger) Claim(ctx context.Context, userID, serverID string, cardID int64) (bool, error) {
	if err := l.users.EnsureServer(ctx, serverID); err != nil {
		return false, err
	}
	if err := l.users.EnsureUser(ctx, userID, serverID); err != nil {
		return false, err
	}

	claimed, err := l.userCards.InsertIfAbsent(ctx, userID, serverID, cardID)
	if err != nil {
		slog.Error("Failed to claim card",
			slog.String("type", "db"),
			slog.String("user_id", userID),
			slog.String("server_id", serverID),
			slog.Int64("card_id", cardID),
			slog.Any("error", err),
		)
		return false, err
	}

	return claimed, nil
}

// Declaim releases ownership of the card resolved by name. False with a nil
// error means the user did not own it or no such card exists.
func (l *Ledger) Declaim(ctx context.Context, userID, serverID, cardName string) (bool, error) {
	card, err := l.cards.GetByName(ctx, cardName)
	if err != nil {
		if repositories.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return l.userCards.Delete(ctx, userID, serverID, card.ID)
}

// Owns reports whether the user owns the card on the server.
func (l *Ledger) Owns(ctx context.Context, userID, serverID string, cardID int64) (bool, error) {
	return l.userCards.Owns(ctx, userID, serverID, cardID)
}

// ListOwned returns the user's cards on the server, sorted by rarity rank
// then name, optionally filtered to one collection (case-insensitive).
func (l *Ledger) ListOwned(ctx context.Context, userID, serverID, collectionFilter string) ([]*models.UserCard, error) {
	return l.userCards.ListOwned(ctx, userID, serverID, collectionFilter)
}
