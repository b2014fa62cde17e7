package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/uptrace/bun"
)

var (
	errInsufficientDust = errors.New("insufficient dust balance")
	errAlreadyOwned     = errors.New("card already owned")
)

type ShopRepository interface {
	Get(ctx context.Context, serverID string) (*models.Shop, error)
	// Upsert replaces the stored triple for the server, but only while the
	// row's last_updated still equals prev (zero prev covers the no-row
	// case). False means another writer rotated first; the caller should
	// re-read and serve the winning stock.
	Upsert(ctx context.Context, shop *models.Shop, prev time.Time) (bool, error)
	// Delete clears the shop row, forcing regeneration on the next read.
	// False if no row existed.
	Delete(ctx context.Context, serverID string) (bool, error)
	// CraftPurchase atomically debits cost and inserts the ownership row.
	// Both the balance check and the ownership check run inside one
	// transaction; a miss on either rolls the whole purchase back.
	// (false, nil) is a business denial, (false, err) a storage failure.
	CraftPurchase(ctx context.Context, userID, serverID string, cardID int64, cost int64) (bool, error)
}

type shopRepository struct {
	*BaseRepository
}

func NewShopRepository(db *bun.DB) ShopRepository {
	return &shopRepository{NewBaseRepository(db)}
}

func (r *shopRepository) Get(ctx context.Context, serverID string) (*models.Shop, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	shop := new(models.Shop)
	err := r.db.NewSelect().
		Model(shop).
		Where("server_id = ?", serverID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "shop", err)
	}

	return shop, nil
}

func (r *shopRepository) Upsert(ctx context.Context, shop *models.Shop, prev time.Time) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	// The WHERE guard on the conflict update makes rotation at-most-once
	// per period across processes, not just within this one.
	res, err := r.db.NewInsert().
		Model(shop).
		On("CONFLICT (server_id) DO UPDATE").
		Set("last_updated = EXCLUDED.last_updated").
		Set("card_id1 = EXCLUDED.card_id1").
		Set("card_id2 = EXCLUDED.card_id2").
		Set("card_id3 = EXCLUDED.card_id3").
		Where("sh.last_updated = ?", prev).
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

func (r *shopRepository) Delete(ctx context.Context, serverID string) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model((*models.Shop)(nil)).
		Where("server_id = ?", serverID).
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

func (r *shopRepository) CraftPurchase(ctx context.Context, userID, serverID string, cardID int64, cost int64) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		// Conditional debit: no row or balance < cost leaves zero rows
		// affected, so the balance can never go negative.
		res, err := tx.NewUpdate().
			Model((*models.DustBalance)(nil)).
			Set("balance = balance - ?", cost).
			Set("updated_at = ?", time.Now()).
			Where("user_id = ? AND server_id = ?", userID, serverID).
			Where("balance >= ?", cost).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return errInsufficientDust
		}

		userCard := &models.UserCard{
			UserID:   userID,
			ServerID: serverID,
			CardID:   cardID,
			Obtained: time.Now(),
		}
		res, err = tx.NewInsert().
			Model(userCard).
			On("CONFLICT (user_id, server_id, card_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			// Rolling back restores the debited dust.
			return errAlreadyOwned
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errInsufficientDust) || errors.Is(err, errAlreadyOwned) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
