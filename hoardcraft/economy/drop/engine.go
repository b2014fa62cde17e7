// Package drop implements the card acquisition engine: a cooldown-gated
// uniform draw over the full catalog, granting unowned cards and converting
// duplicates to dust.
package drop

import (
	"context"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories"
	"github.com/hoardcraft/bot/hoardcraft/economy/cooldown"
)

// Outcome tags the result of a draw.
type Outcome int

const (
	// OutcomeGranted means the card is unowned and may be claimed by the
	// drawing user.
	OutcomeGranted Outcome = iota
	// OutcomeConverted means the user already owned the card and was
	// credited its dust value instead.
	OutcomeConverted
	// OutcomeDenied means the cooldown limit is reached.
	OutcomeDenied
	// OutcomeEmpty means the catalog has no cards.
	OutcomeEmpty
)

// Result carries the fields relevant to its Outcome: Card for Granted and
// Converted, Dust for Converted, RetryAfter for Denied.
type Result struct {
	Outcome    Outcome
	Card       *models.Card
	Dust       int64
	RetryAfter time.Duration
}

// DustValue converts a rarity to the dust credited for a duplicate draw.
// Independent of the shop cost table.
func DustValue(r models.Rarity) int64 {
	switch r {
	case models.RarityLegendary:
		return 500
	case models.RarityEpic:
		return 200
	case models.RarityRare:
		return 100
	case models.RarityUncommon:
		return 50
	case models.RarityCommon:
		return 10
	default:
		return 0
	}
}

type Engine struct {
	cooldowns *cooldown.Tracker
	cards     repositories.CardRepository
	userCards repositories.UserCardRepository
	dust      repositories.DustRepository
	users     repositories.UserRepository
}

func NewEngine(
	cooldowns *cooldown.Tracker,
	cards repositories.CardRepository,
	userCards repositories.UserCardRepository,
	dust repositories.DustRepository,
	users repositories.UserRepository,
) *Engine {
	return &Engine{
		cooldowns: cooldowns,
		cards:     cards,
		userCards: userCards,
		dust:      dust,
		users:     users,
	}
}

// Draw runs one acquisition attempt for the user on the server. Business
// outcomes (denied, empty, duplicate) are ordinary results; only storage
// failures surface as errors.
func (e *Engine) Draw(ctx context.Context, userID, serverID string) (*Result, error) {
	check, err := e.cooldowns.CheckAndConsume(ctx, userID, serverID)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return &Result{Outcome: OutcomeDenied, RetryAfter: check.RetryAfter}, nil
	}

	// Ownership is per user, so the draw is not filtered by it: many users
	// can draw the same card independently.
	card, err := e.cards.GetRandom(ctx)
	if err != nil {
		if repositories.IsNotFound(err) {
			return &Result{Outcome: OutcomeEmpty}, nil
		}
		return nil, err
	}

	owned, err := e.userCards.Owns(ctx, userID, serverID, card.ID)
	if err != nil {
		return nil, err
	}

	if owned {
		dust := DustValue(card.Rarity)
		if err := e.users.EnsureServer(ctx, serverID); err != nil {
			return nil, err
		}
		if err := e.users.EnsureUser(ctx, userID, serverID); err != nil {
			return nil, err
		}
		if err := e.dust.Credit(ctx, userID, serverID, dust); err != nil {
			return nil, err
		}
		return &Result{Outcome: OutcomeConverted, Card: card, Dust: dust}, nil
	}

	return &Result{Outcome: OutcomeGranted, Card: card}, nil
}
