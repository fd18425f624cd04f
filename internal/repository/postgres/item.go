package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

type itemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (owner_id, name, description, daily_price_cents, deposit_cents, status, cleaning_buffer_days, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, item.OwnerID, item.Name, item.Description,
		item.DailyPriceCents, item.DepositCents, item.Status, item.CleaningBufferDays, now, now).Scan(&item.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	item := &domain.Item{}
	query := `SELECT id, owner_id, name, description, daily_price_cents, deposit_cents, status, cleaning_buffer_days, created_on, updated_on
	          FROM items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.OwnerID, &item.Name, &item.Description,
		&item.DailyPriceCents, &item.DepositCents, &item.Status, &item.CleaningBufferDays, &item.CreatedOn, &item.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.CodeNotFound, "item %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
