package domain

import "time"

// RoomDesign pairs an uploaded room photo with its generated redesign.
// Image URLs are nil when the corresponding storage write failed.
type RoomDesign struct {
	ID                string    `json:"id"`
	OriginalImageURL  *string   `json:"original_image_url"`
	GeneratedImageURL *string   `json:"generated_image_url"`
	DesignType        string    `json:"design_type"`
	RoomType          string    `json:"room_type"`
	Style             string    `json:"style"`
	BackgroundColor   string    `json:"background_color"`
	ForegroundColor   string    `json:"foreground_color"`
	Instructions      string    `json:"instructions"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"created_at"`
}

// DesignParams are the user-supplied design preferences of a try-on request.
type DesignParams struct {
	DesignType      string
	RoomType        string
	Style           string
	BackgroundColor string
	ForegroundColor string
	Instructions    string
}

// NewRoomDesign is the insert payload for a generated design.
type NewRoomDesign struct {
	DesignParams
	OriginalImageURL  string
	GeneratedImageURL string
	Description       string
}
