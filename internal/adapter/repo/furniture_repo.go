package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"roomdesign/internal/domain"
	"roomdesign/internal/infra"
	"roomdesign/internal/sqlinline"
)

// FurnitureRepositoryPG implements domain.FurnitureRepository using PostgreSQL.
type FurnitureRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewFurnitureRepository constructs a furniture repository on top of the SQL runner.
func NewFurnitureRepository(sql infra.SQLExecutor) *FurnitureRepositoryPG {
	return &FurnitureRepositoryPG{sql: sql}
}

// Create inserts a furniture item and returns the stored row.
func (r *FurnitureRepositoryPG) Create(ctx context.Context, item domain.NewFurnitureItem) (*domain.FurnitureItem, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertFurnitureItem, item.Name, item.Category, item.ImageURL)
	created, err := scanFurniture(row)
	if err != nil {
		return nil, fmt.Errorf("insert furniture: %w", err)
	}
	return created, nil
}

// List returns furniture newest first, optionally restricted to one category.
func (r *FurnitureRepositoryPG) List(ctx context.Context, category string) ([]domain.FurnitureItem, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListFurnitureItems, category)
	if err != nil {
		return nil, err
	}
	return collectFurniture(rows)
}

// GetByID fetches one item; unknown or malformed ids yield domain.ErrNotFound.
func (r *FurnitureRepositoryPG) GetByID(ctx context.Context, id string) (*domain.FurnitureItem, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	item, err := scanFurniture(r.sql.QueryRow(ctx, sqlinline.QSelectFurnitureItemByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListByIDs resolves a batch of ids in one query. Malformed ids and ids
// without a row are omitted; rows come back in database order.
func (r *FurnitureRepositoryPG) ListByIDs(ctx context.Context, ids []string) ([]domain.FurnitureItem, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if canonical, ok := canonicalID(id); ok {
			valid = append(valid, canonical)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListFurnitureItemsByIDs, valid)
	if err != nil {
		return nil, err
	}
	return collectFurniture(rows)
}

// Delete removes the row, returning domain.ErrNotFound when nothing matched.
func (r *FurnitureRepositoryPG) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return domain.ErrNotFound
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteFurnitureItem, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFurniture(row pgx.Row) (*domain.FurnitureItem, error) {
	var item domain.FurnitureItem
	if err := row.Scan(&item.ID, &item.Name, &item.Category, &item.ImageURL, &item.UserID, &item.CreatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func collectFurniture(rows pgx.Rows) ([]domain.FurnitureItem, error) {
	defer rows.Close()

	items := make([]domain.FurnitureItem, 0)
	for rows.Next() {
		item, err := scanFurniture(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.FurnitureRepository = (*FurnitureRepositoryPG)(nil)
