package repositories

import (
	"context"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/uptrace/bun"
)

// RequestRepository stores the per-(user, server) draw counters. The
// conditional writes are the serialization point for the cooldown: each one
// only takes effect if the precondition still holds when it runs, so two
// concurrent draws cannot both consume the same slot.
type RequestRepository interface {
	Get(ctx context.Context, userID, serverID string) (*models.UserRequest, error)
	// Create opens a fresh window with count 1. False if a row already
	// exists (another request won the race).
	Create(ctx context.Context, userID, serverID string, now time.Time) (bool, error)
	// Increment consumes one slot in the window anchored at anchor, only
	// while the count is below max. False if the window moved or is full.
	Increment(ctx context.Context, userID, serverID string, anchor time.Time, max int) (bool, error)
	// ResetWindow re-anchors an elapsed window at now. The anchor guard
	// ensures only one of several concurrent resets wins.
	ResetWindow(ctx context.Context, userID, serverID string, anchor, now time.Time) (bool, error)
	Delete(ctx context.Context, userID, serverID string) error
}

type requestRepository struct {
	*BaseRepository
}

func NewRequestRepository(db *bun.DB) RequestRepository {
	return &requestRepository{NewBaseRepository(db)}
}

func (r *requestRepository) Get(ctx context.Context, userID, serverID string) (*models.UserRequest, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	req := new(models.UserRequest)
	err := r.db.NewSelect().
		Model(req).
		Where("user_id = ? AND server_id = ?", userID, serverID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "user request", err)
	}

	return req, nil
}

func (r *requestRepository) Create(ctx context.Context, userID, serverID string, now time.Time) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	req := &models.UserRequest{
		UserID:           userID,
		ServerID:         serverID,
		FirstRequestTime: now,
		RequestCount:     1,
	}

	res, err := r.db.NewInsert().
		Model(req).
		On("CONFLICT (user_id, server_id) DO NOTHING").
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

func (r *requestRepository) Increment(ctx context.Context, userID, serverID string, anchor time.Time, max int) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewUpdate().
		Model((*models.UserRequest)(nil)).
		Set("request_count = request_count + 1").
		Where("user_id = ? AND server_id = ?", userID, serverID).
		Where("first_request_time = ?", anchor).
		Where("request_count < ?", max).
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

func (r *requestRepository) ResetWindow(ctx context.Context, userID, serverID string, anchor, now time.Time) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewUpdate().
		Model((*models.UserRequest)(nil)).
		Set("first_request_time = ?", now).
		Set("request_count = 1").
		Where("user_id = ? AND server_id = ?", userID, serverID).
		Where("first_request_time = ?", anchor).
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

func (r *requestRepository) Delete(ctx context.Context, userID, serverID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.db.NewDelete().
		Model((*models.UserRequest)(nil)).
		Where("user_id = ? AND server_id = ?", userID, serverID).
		Exec(ctx)

	return err
}
