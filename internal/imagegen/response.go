package imagegen

import (
	"encoding/base64"

	"roomdesign/internal/providers/gemini"
)

// TryOnResponse is the JSON body of a try-on call.
type TryOnResponse struct {
	Image             *string `json:"image"`
	Text              string  `json:"text"`
	DesignID          *string `json:"design_id"`
	GeneratedImageURL *string `json:"generated_image_url"`
}

// PlacementResponse is the JSON body of a furniture placement call.
type PlacementResponse struct {
	Image        *string `json:"image"`
	Text         string  `json:"text"`
	RoomDesignID string  `json:"room_design_id"`
}

// DataURI encodes img as data:<mime>;base64,<payload>. nil yields nil.
func DataURI(img *gemini.Image) *string {
	if img == nil {
		return nil
	}
	uri := "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
	return &uri
}
