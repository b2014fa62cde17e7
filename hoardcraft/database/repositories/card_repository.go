package repositories

import (
	"context"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/uptrace/bun"
)

const maxBatchSize = 1000

type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	GetByName(ctx context.Context, name string) (*models.Card, error)
	GetAll(ctx context.Context) ([]*models.Card, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error)
	GetByCollectionID(ctx context.Context, collectionID int64) ([]*models.Card, error)
	GetRandom(ctx context.Context) (*models.Card, error)
	GetRandomSample(ctx context.Context, n int) ([]*models.Card, error)
	GetCardCount(ctx context.Context) (int64, error)
	BulkCreate(ctx context.Context, cards []*models.Card) (int, error)
}

type cardRepository struct {
	*BaseRepository
}

func NewCardRepository(db *bun.DB) CardRepository {
	return &cardRepository{NewBaseRepository(db)}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	card.CreatedAt = time.Now()
	card.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(card).
		Returning("id").
		Exec(ctx)

	return err
}

func (r *cardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Relation("Collection").
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "card", err)
	}

	return card, nil
}

func (r *cardRepository) GetByName(ctx context.Context, name string) (*models.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Relation("Collection").
		Where("LOWER(c.name) = LOWER(?)", name).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "card", err)
	}

	return card, nil
}

func (r *cardRepository) GetAll(ctx context.Context) ([]*models.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Relation("Collection").
		Order("c.id ASC").
		Scan(ctx)

	return cards, err
}

func (r *cardRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	if len(ids) == 0 {
		return nil, nil
	}

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Relation("Collection").
		Where("c.id IN (?)", bun.In(ids)).
		Scan(ctx)

	return cards, err
}

func (r *cardRepository) GetByCollectionID(ctx context.Context, collectionID int64) ([]*models.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Where("collection_id = ?", collectionID).
		Order("id ASC").
		Scan(ctx)

	return cards, err
}

// GetRandom selects one card uniformly at random from the full catalog.
func (r *cardRepository) GetRandom(ctx context.Context) (*models.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Relation("Collection").
		OrderExpr("RANDOM()").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "card", err)
	}

	return card, nil
}

// GetRandomSample selects up to n distinct cards uniformly at random.
func (r *cardRepository) GetRandomSample(ctx context.Context, n int) ([]*models.Card, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Relation("Collection").
		OrderExpr("RANDOM()").
		Limit(n).
		Scan(ctx)

	return cards, err
}

func (r *cardRepository) GetCardCount(ctx context.Context) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	count, err := r.db.NewSelect().
		Model((*models.Card)(nil)).
		Count(ctx)

	return int64(count), err
}

// BulkCreate upserts catalog cards in batches, used by the seeding path.
func (r *cardRepository) BulkCreate(ctx context.Context, cards []*models.Card) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	if len(cards) == 0 {
		return 0, nil
	}

	now := time.Now()
	totalCreated := 0

	for i := 0; i < len(cards); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(cards) {
			end = len(cards)
		}
		batch := cards[i:end]

		for _, card := range batch {
			card.CreatedAt = now
			card.UpdatedAt = now
		}

		res, err := r.db.NewInsert().
			Model(&batch).
			On("CONFLICT (name) DO UPDATE").
			Set("collection_id = EXCLUDED.collection_id").
			Set("rarity = EXCLUDED.rarity").
			Set("title = EXCLUDED.title").
			Set("quote = EXCLUDED.quote").
			Set("image_url = EXCLUDED.image_url").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return totalCreated, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return totalCreated, err
		}

		totalCreated += int(affected)
	}

	return totalCreated, nil
}
