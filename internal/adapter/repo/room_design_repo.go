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

const (
	DefaultDesignListLimit = 50
	MaxDesignListLimit     = 200
)

// RoomDesignRepositoryPG implements domain.RoomDesignRepository using PostgreSQL.
type RoomDesignRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewRoomDesignRepository(sql infra.SQLExecutor) *RoomDesignRepositoryPG {
	return &RoomDesignRepositoryPG{sql: sql}
}

func (r *RoomDesignRepositoryPG) Create(ctx context.Context, d domain.NewRoomDesign) (*domain.RoomDesign, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertRoomDesign,
		d.OriginalImageURL,
		d.GeneratedImageURL,
		d.DesignType,
		d.RoomType,
		d.Style,
		d.BackgroundColor,
		d.ForegroundColor,
		d.Instructions,
		d.Description,
	)
	design, err := scanRoomDesign(row)
	if err != nil {
		return nil, fmt.Errorf("insert room design: %w", err)
	}
	return design, nil
}

// List returns designs newest first. limit is clamped to [1, MaxDesignListLimit].
func (r *RoomDesignRepositoryPG) List(ctx context.Context, limit int) ([]domain.RoomDesign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListRoomDesigns, ClampDesignLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	designs := make([]domain.RoomDesign, 0)
	for rows.Next() {
		d, err := scanRoomDesign(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return designs, nil
}

func (r *RoomDesignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.RoomDesign, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	d, err := scanRoomDesign(r.sql.QueryRow(ctx, sqlinline.QSelectRoomDesignByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return d, err
}

func (r *RoomDesignRepositoryPG) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return domain.ErrNotFound
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteRoomDesign, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClampDesignLimit maps non-positive values to 1 and caps at MaxDesignListLimit.
func ClampDesignLimit(limit int) int {
	switch {
	case limit < 1:
		return 1
	case limit > MaxDesignListLimit:
		return MaxDesignListLimit
	default:
		return limit
	}
}

func scanRoomDesign(row pgx.Row) (*domain.RoomDesign, error) {
	var d domain.RoomDesign
	err := row.Scan(
		&d.ID,
		&d.OriginalImageURL,
		&d.GeneratedImageURL,
		&d.DesignType,
		&d.RoomType,
		&d.Style,
		&d.BackgroundColor,
		&d.ForegroundColor,
		&d.Instructions,
		&d.Description,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

var _ domain.RoomDesignRepository = (*RoomDesignRepositoryPG)(nil)
