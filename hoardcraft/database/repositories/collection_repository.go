package repositories

import (
	"context"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/uptrace/bun"
)

type CollectionRepository interface {
	GetByName(ctx context.Context, name string) (*models.Collection, error)
	GetAll(ctx context.Context) ([]*models.Collection, error)
	Ensure(ctx context.Context, name string) (*models.Collection, error)
}

type collectionRepository struct {
	*BaseRepository
}

func NewCollectionRepository(db *bun.DB) CollectionRepository {
	return &collectionRepository{NewBaseRepository(db)}
}

func (r *collectionRepository) GetByName(ctx context.Context, name string) (*models.Collection, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	col := new(models.Collection)
	err := r.db.NewSelect().
		Model(col).
		Where("LOWER(name) = LOWER(?)", name).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "collection", err)
	}

	return col, nil
}

func (r *collectionRepository) GetAll(ctx context.Context) ([]*models.Collection, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var cols []*models.Collection
	err := r.db.NewSelect().
		Model(&cols).
		Order("name ASC").
		Scan(ctx)

	return cols, err
}

// Ensure inserts the collection if it does not exist yet and returns the
// stored row either way. Used by the seeding path.
func (r *collectionRepository) Ensure(ctx context.Context, name string) (*models.Collection, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	col := &models.Collection{Name: name}
	_, err := r.db.NewInsert().
		Model(col).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	err = r.db.NewSelect().
		Model(col).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return col, nil
}
