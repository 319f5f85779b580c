package domain

import "context"

// FurnitureRepository defines persistence for furniture items.
type FurnitureRepository interface {
	Create(ctx context.Context, item NewFurnitureItem) (*FurnitureItem, error)
	List(ctx context.Context, category string) ([]FurnitureItem, error)
	GetByID(ctx context.Context, id string) (*FurnitureItem, error)
	ListByIDs(ctx context.Context, ids []string) ([]FurnitureItem, error)
	Delete(ctx context.Context, id string) error
}

// RoomDesignRepository defines persistence for generated room designs.
type RoomDesignRepository interface {
	Create(ctx context.Context, design NewRoomDesign) (*RoomDesign, error)
	List(ctx context.Context, limit int) ([]RoomDesign, error)
	GetByID(ctx context.Context, id string) (*RoomDesign, error)
	Delete(ctx context.Context, id string) error
}
