// Package imagegen runs the try-on and furniture placement pipelines:
// validate uploads, resolve furniture references, build the prompt, call the
// model, persist the result best-effort and shape the response.
package imagegen

import (
	"context"

	"roomdesign/internal/domain"
	"roomdesign/internal/providers/gemini"
)

// Upload is one file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Image converts the upload into a model input part.
func (u Upload) Image() gemini.Image {
	return gemini.Image{Data: u.Data, MIME: u.ContentType}
}

// TryOnRequest is the parsed body of POST /api/try-on.
type TryOnRequest struct {
	Params       domain.DesignParams
	Scene        Upload
	FurnitureIDs string
}

// PlacementRequest is the parsed body of POST /api/furniture-placement.
type PlacementRequest struct {
	RoomDesignID string
	Furniture    []Upload
}

// Generator produces an image and description from a prompt and ordered images.
type Generator interface {
	Generate(ctx context.Context, prompt string, images []gemini.Image) (gemini.Output, error)
}

// FurnitureLookup resolves furniture rows by id in one batch.
type FurnitureLookup interface {
	ListByIDs(ctx context.Context, ids []string) ([]domain.FurnitureItem, error)
}

// DesignStore is the room design persistence used by the pipelines.
type DesignStore interface {
	Create(ctx context.Context, design domain.NewRoomDesign) (*domain.RoomDesign, error)
	GetByID(ctx context.Context, id string) (*domain.RoomDesign, error)
}
