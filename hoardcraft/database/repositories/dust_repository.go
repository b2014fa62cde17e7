package repositories

import (
	"context"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/uptrace/bun"
)

type DustRepository interface {
	// GetBalance returns 0 for users with no balance row yet.
	GetBalance(ctx context.Context, userID, serverID string) (int64, error)
	// Credit adds dust, creating the balance row on first credit.
	Credit(ctx context.Context, userID, serverID string, amount int64) error
}

type dustRepository struct {
	*BaseRepository
}

func NewDustRepository(db *bun.DB) DustRepository {
	return &dustRepository{NewBaseRepository(db)}
}

func (r *dustRepository) GetBalance(ctx context.Context, userID, serverID string) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	balance := new(models.DustBalance)
	err := r.db.NewSelect().
		Model(balance).
		Where("user_id = ? AND server_id = ?", userID, serverID).
		Scan(ctx)
	if err != nil {
		if IsNotFound(err) {
			return 0, nil
		}
		return 0, r.HandleError("get", "dust balance", err)
	}

	return balance.Balance, nil
}

func (r *dustRepository) Credit(ctx context.Context, userID, serverID string, amount int64) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	balance := &models.DustBalance{
		UserID:    userID,
		ServerID:  serverID,
		Balance:   amount,
		UpdatedAt: time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(balance).
		On("CONFLICT (user_id, server_id) DO UPDATE").
		Set("balance = db.balance + EXCLUDED.balance").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	return err
}
