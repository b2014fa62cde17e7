package repositories

import (
	"context"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/uptrace/bun"
)

// rarityRankExpr orders rarities legendary-first for collection listings.
const rarityRankExpr = "CASE card.rarity " +
	"WHEN 'legendary' THEN 0 " +
	"WHEN 'epic' THEN 1 " +
	"WHEN 'rare' THEN 2 " +
	"WHEN 'uncommon' THEN 3 " +
	"WHEN 'common' THEN 4 " +
	"ELSE 5 END"

type UserCardRepository interface {
	// InsertIfAbsent claims the card for the user. The unique index on
	// (user_id, server_id, card_id) makes the check-then-insert atomic;
	// false means the row already existed.
	InsertIfAbsent(ctx context.Context, userID, serverID string, cardID int64) (bool, error)
	Delete(ctx context.Context, userID, serverID string, cardID int64) (bool, error)
	Owns(ctx context.Context, userID, serverID string, cardID int64) (bool, error)
	ListOwned(ctx context.Context, userID, serverID, collectionFilter string) ([]*models.UserCard, error)
	CountOwned(ctx context.Context, userID, serverID string) (int, error)
}

type userCardRepository struct {
	*BaseRepository
}

func NewUserCardRepository(db *bun.DB) UserCardRepository {
	return &userCardRepository{NewBaseRepository(db)}
}

func (r *userCardRepository) InsertIfAbsent(ctx context.Context, userID, serverID string, cardID int64) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	userCard := &models.UserCard{
		UserID:   userID,
		ServerID: serverID,
		CardID:   cardID,
		Obtained: time.Now(),
	}

	res, err := r.db.NewInsert().
		Model(userCard).
		On("CONFLICT (user_id, server_id, card_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *userCardRepository) Delete(ctx context.Context, userID, serverID string, cardID int64) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model((*models.UserCard)(nil)).
		Where("user_id = ? AND server_id = ? AND card_id = ?", userID, serverID, cardID).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *userCardRepository) Owns(ctx context.Context, userID, serverID string, cardID int64) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	return r.db.NewSelect().
		Model((*models.UserCard)(nil)).
		Where("user_id = ? AND server_id = ? AND card_id = ?", userID, serverID, cardID).
		Exists(ctx)
}

// ListOwned returns the user's collection on one server, sorted by rarity
// rank (legendary first) then card name. An optional collection filter is
// matched case-insensitively against the collection name.
func (r *userCardRepository) ListOwned(ctx context.Context, userID, serverID, collectionFilter string) ([]*models.UserCard, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var userCards []*models.UserCard
	q := r.db.NewSelect().
		Model(&userCards).
		Relation("Card").
		Relation("Card.Collection").
		Where("uc.user_id = ? AND uc.server_id = ?", userID, serverID)

	if collectionFilter != "" {
		q = q.Where("LOWER(card__collection.name) = LOWER(?)", collectionFilter)
	}

	err := q.
		OrderExpr(rarityRankExpr).
		OrderExpr("card.name ASC").
		Scan(ctx)

	return userCards, err
}

func (r *userCardRepository) CountOwned(ctx context.Context, userID, serverID string) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	return r.db.NewSelect().
		Model((*models.UserCard)(nil)).
		Where("user_id = ? AND server_id = ?", userID, serverID).
		Count(ctx)
}
