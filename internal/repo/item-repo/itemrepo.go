package itemrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
	"go.uber.org/zap"
)

const itemColumns = `id, lender_id, title, description, condition, estimated_price, min_days, max_days, daily_deposit, location, is_active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(&item.ID, &item.LenderID, &item.Title, &item.Description, &item.Condition,
		&item.EstimatedPrice, &item.MinDays, &item.MaxDays, &item.DailyDeposit,
		&item.Location, &item.IsActive, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) Save(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
        INSERT INTO items (lender_id, title, description, condition, estimated_price, min_days, max_days, daily_deposit, location, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + itemColumns
	row := r.db.QueryRow(ctx, query, item.LenderID, item.Title, item.Description, item.Condition,
		item.EstimatedPrice, item.MinDays, item.MaxDays, item.DailyDeposit, item.Location, item.IsActive)

	created, err := scanItem(row)
	if err != nil {
		zap.L().Error("can't save item", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) FindActive(ctx context.Context, skip, limit int) ([]domain.Item, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM items
        WHERE is_active = TRUE
        ORDER BY created_at DESC
        OFFSET $1 LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		zap.L().Error("can't get items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *Repository) FindByLenderID(ctx context.Context, lenderID int) ([]domain.Item, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM items
        WHERE lender_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, lenderID)
	if err != nil {
		zap.L().Error("can't get lender items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *Repository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
        UPDATE items
        SET title = $1, description = $2, condition = $3, estimated_price = $4,
            min_days = $5, max_days = $6, daily_deposit = $7, location = $8, is_active = $9
        WHERE id = $10
        RETURNING ` + itemColumns
	row := r.db.QueryRow(ctx, query, item.Title, item.Description, item.Condition, item.EstimatedPrice,
		item.MinDays, item.MaxDays, item.DailyDeposit, item.Location, item.IsActive, item.ID)

	updated, err := scanItem(row)
	if err != nil {
		zap.L().Error("can't update item", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE items SET is_active = FALSE WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't deactivate item", zap.Error(err))
		return err
	}
	return nil
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			zap.L().Error("can't scan item row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
