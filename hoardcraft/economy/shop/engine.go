// Package shop maintains the rotating per-server shop and executes atomic
// dust-for-card purchases.
package shop

import (
	"context"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/config"
	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories"
	"golang.org/x/sync/singleflight"
)

// Listing is one shop entry with its computed crafting cost.
type Listing struct {
	Card *models.Card
	Cost int64
}

// Cost converts a rarity to its crafting cost. Independent of the dust
// values credited for duplicate draws.
func Cost(r models.Rarity) int64 {
	switch r {
	case models.RarityLegendary:
		return 1000
	case models.RarityEpic:
		return 400
	case models.RarityRare:
		return 200
	case models.RarityUncommon:
		return 100
	default:
		return 50
	}
}

type Engine struct {
	shops    repositories.ShopRepository
	cards    repositories.CardRepository
	users    repositories.UserRepository
	group    singleflight.Group
	rotation time.Duration
	size     int
	now      func() time.Time
}

func NewEngine(
	shops repositories.ShopRepository,
	cards repositories.CardRepository,
	users repositories.UserRepository,
) *Engine {
	return &Engine{
		shops:    shops,
		cards:    cards,
		users:    users,
		rotation: config.ShopRotationPeriod,
		size:     config.ShopSize,
		now:      time.Now,
	}
}

// Inventory returns the server's current shop listings, regenerating the
// stored triple when absent or older than the rotation period. Concurrent
// regenerations for the same server are collapsed into one.
func (e *Engine) Inventory(ctx context.Context, serverID string) ([]Listing, error) {
	stored, err := e.shops.Get(ctx, serverID)
	if err != nil && !repositories.IsNotFound(err) {
		return nil, err
	}

	if err == nil && e.now().Sub(stored.LastUpdated) < e.rotation {
		return e.load(ctx, stored)
	}

	// prev anchors the rotation: the store only accepts the new triple if
	// the row is still the one we saw. Zero means no row yet.
	var prev time.Time
	if err == nil {
		prev = stored.LastUpdated
	}

	v, err, _ := e.group.Do(serverID, func() (interface{}, error) {
		return e.regenerate(ctx, serverID, prev)
	})
	if err != nil {
		return nil, err
	}

	return v.([]Listing), nil
}

// load resolves the stored card references in their stored slot order.
func (e *Engine) load(ctx context.Context, stored *models.Shop) ([]Listing, error) {
	ids := stored.CardIDs()
	cards, err := e.cards.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*models.Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	listings := make([]Listing, 0, len(ids))
	for _, id := range ids {
		card, ok := byID[id]
		if !ok {
			// Card removed from the catalog since generation; skip the slot.
			continue
		}
		listings = append(listings, Listing{Card: card, Cost: Cost(card.Rarity)})
	}

	return listings, nil
}

func (e *Engine) regenerate(ctx context.Context, serverID string, prev time.Time) ([]Listing, error) {
	sample, err := e.cards.GetRandomSample(ctx, e.size)
	if err != nil {
		return nil, err
	}
	if len(sample) == 0 {
		return nil, nil
	}

	stored := &models.Shop{
		ServerID:    serverID,
		LastUpdated: e.now(),
	}
	stored.CardID1 = sample[0].ID
	if len(sample) > 1 {
		stored.CardID2 = sample[1].ID
	}
	if len(sample) > 2 {
		stored.CardID3 = sample[2].ID
	}

	rotated, err := e.shops.Upsert(ctx, stored, prev)
	if err != nil {
		return nil, err
	}
	if !rotated {
		// Another process rotated first; serve its stock instead of ours.
		current, err := e.shops.Get(ctx, serverID)
		if err != nil {
			return nil, err
		}
		return e.load(ctx, current)
	}

	listings := make([]Listing, 0, len(sample))
	for _, card := range sample {
		listings = append(listings, Listing{Card: card, Cost: Cost(card.Rarity)})
	}

	return listings, nil
}

// Craft purchases the card for the user: balance check, ownership check,
// debit and insert all run as one transaction in the store. False with a
// nil error is a business denial (insufficient dust or already owned).
func (e *Engine) Craft(ctx context.Context, userID, serverID string, cardID, cost int64) (bool, error) {
	if err := e.users.EnsureServer(ctx, serverID); err != nil {
		return false, err
	}
	if err := e.users.EnsureUser(ctx, userID, serverID); err != nil {
		return false, err
	}

	return e.shops.CraftPurchase(ctx, userID, serverID, cardID, cost)
}

// Reset clears the server's shop, forcing regeneration on the next read.
// Admin override; false means there was nothing to clear.
func (e *Engine) Reset(ctx context.Context, serverID string) (bool, error) {
	return e.shops.Delete(ctx, serverID)
}
