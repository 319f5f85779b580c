package domain

import "time"

// FurnitureItem is a catalog entry for a user-uploaded piece of furniture.
type FurnitureItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFurnitureItem carries the fields supplied on upload.
type NewFurnitureItem struct {
	Name     string
	Category string
	ImageURL string
}
