package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomdesign/internal/domain"
	"roomdesign/internal/sqlinline"
)

var created = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func furnitureRow(id, name string) []any {
	return []any{id, name, "seating", "http://localhost:8080/static/furniture-images/furniture/" + id + ".jpg", nil, created}
}

func TestFurnitureCreate(t *testing.T) {
	sql := &stubSQL{rows: [][]any{furnitureRow("f-1", "Blue Sofa")}}
	repo := NewFurnitureRepository(sql)

	item, err := repo.Create(context.Background(), domain.NewFurnitureItem{Name: "Blue Sofa", Category: "seating", ImageURL: "u"})
	require.NoError(t, err)
	assert.Equal(t, "f-1", item.ID)
	assert.Nil(t, item.UserID)
	assert.Equal(t, created, item.CreatedAt)

	require.Len(t, sql.calls, 1)
	assert.Equal(t, sqlinline.QInsertFurnitureItem, sql.calls[0].query)
	assert.Equal(t, []any{"Blue Sofa", "seating", "u"}, sql.calls[0].args)
}

func TestFurnitureListPassesCategory(t *testing.T) {
	sql := &stubSQL{rows: [][]any{furnitureRow("f-2", "Lamp"), furnitureRow("f-1", "Sofa")}}
	items, err := NewFurnitureRepository(sql).List(context.Background(), "lighting")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "f-2", items[0].ID)
	assert.Equal(t, []any{"lighting"}, sql.calls[0].args)
}

func TestFurnitureListEmptyIsNotNil(t *testing.T) {
	items, err := NewFurnitureRepository(&stubSQL{}).List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

const (
	sofaID  = "5f0c4a8e-3b1d-4c2e-9a7f-1d2e3f4a5b6c"
	chairID = "9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

func TestFurnitureGetByIDNotFound(t *testing.T) {
	sql := &stubSQL{}
	_, err := NewFurnitureRepository(sql).GetByID(context.Background(), sofaID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, sqlinline.QSelectFurnitureItemByID, sql.calls[0].query)
}

func TestFurnitureMalformedIDSkipsQuery(t *testing.T) {
	sql := &stubSQL{rows: [][]any{furnitureRow(sofaID, "Sofa")}, execTag: "DELETE 1"}
	repo := NewFurnitureRepository(sql)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "1; drop table"), domain.ErrNotFound)
	assert.Empty(t, sql.calls)
}

func TestFurnitureGetByIDCanonicalizes(t *testing.T) {
	sql := &stubSQL{rows: [][]any{furnitureRow(sofaID, "Sofa")}}
	item, err := NewFurnitureRepository(sql).GetByID(context.Background(), "5F0C4A8E-3B1D-4C2E-9A7F-1D2E3F4A5B6C")
	require.NoError(t, err)
	assert.Equal(t, sofaID, item.ID)
	assert.Equal(t, []any{sofaID}, sql.calls[0].args)
}

func TestFurnitureListByIDs(t *testing.T) {
	sql := &stubSQL{rows: [][]any{furnitureRow(chairID, "Chair")}}
	repo := NewFurnitureRepository(sql)

	items, err := repo.ListByIDs(context.Background(), []string{sofaID, "not-a-uuid", chairID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chair", items[0].Name)
	assert.Equal(t, sqlinline.QListFurnitureItemsByIDs, sql.calls[0].query)
	assert.Equal(t, []any{[]string{sofaID, chairID}}, sql.calls[0].args)

	none, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	none, err = repo.ListByIDs(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Len(t, sql.calls, 1)
}

func TestFurnitureDelete(t *testing.T) {
	sql := &stubSQL{execTag: "DELETE 1"}
	require.NoError(t, NewFurnitureRepository(sql).Delete(context.Background(), sofaID))
	assert.Equal(t, []any{sofaID}, sql.calls[0].args)

	sql = &stubSQL{execTag: "DELETE 0"}
	assert.ErrorIs(t, NewFurnitureRepository(sql).Delete(context.Background(), sofaID), domain.ErrNotFound)

	boom := errors.New("connection reset")
	sql = &stubSQL{err: boom}
	assert.ErrorIs(t, NewFurnitureRepository(sql).Delete(context.Background(), sofaID), boom)
}
