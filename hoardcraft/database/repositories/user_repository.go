package repositories

import (
	"context"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/uptrace/bun"
)

// UserRepository handles lazy registration of servers and per-server users.
// Both are created on first contact; re-registering is a no-op.
type UserRepository interface {
	EnsureServer(ctx context.Context, serverID string) error
	EnsureUser(ctx context.Context, userID, serverID string) error
}

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{NewBaseRepository(db)}
}

func (r *userRepository) EnsureServer(ctx context.Context, serverID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	server := &models.Server{
		ServerID:  serverID,
		CreatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(server).
		On("CONFLICT (server_id) DO NOTHING").
		Exec(ctx)

	return err
}

func (r *userRepository) EnsureUser(ctx context.Context, userID, serverID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	user := &models.User{
		UserID:    userID,
		ServerID:  serverID,
		CreatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(user).
		On("CONFLICT (user_id, server_id) DO NOTHING").
		Exec(ctx)

	return err
}
