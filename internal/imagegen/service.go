package imagegen

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"roomdesign/internal/domain"
	"roomdesign/internal/imaging"
	"roomdesign/internal/providers/gemini"
)

// ErrRoomImageFetch is returned when a placement's base room image cannot be
// downloaded. It wraps domain.ErrUpstreamFetch.
var ErrRoomImageFetch = fmt.Errorf("fetch room design image: %w", domain.ErrUpstreamFetch)

// Service runs the try-on and placement pipelines.
type Service struct {
	resolver  *Resolver
	generator Generator
	persister *Persister
	designs   DesignStore
	fetcher   *Fetcher
	maxDim    int
	logger    zerolog.Logger
}

// ServiceOptions wires a Service. MaxInputDimension <= 0 sends images unscaled.
type ServiceOptions struct {
	Resolver          *Resolver
	Generator         Generator
	Persister         *Persister
	Designs           DesignStore
	Fetcher           *Fetcher
	MaxInputDimension int
	Logger            zerolog.Logger
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		resolver:  opts.Resolver,
		generator: opts.Generator,
		persister: opts.Persister,
		designs:   opts.Designs,
		fetcher:   opts.Fetcher,
		maxDim:    opts.MaxInputDimension,
		logger:    opts.Logger,
	}
}

// TryOn redesigns the uploaded scene. Validation and generation errors are
// returned; persistence problems only null the affected response fields.
func (s *Service) TryOn(ctx context.Context, req TryOnRequest) (*TryOnResponse, error) {
	if err := ValidateImage(req.Scene, "place_image", 0); err != nil {
		return nil, err
	}

	refs, err := s.resolver.Resolve(ctx, ParseFurnitureIDs(req.FurnitureIDs))
	if err != nil {
		return nil, err
	}

	prompt := BuildTryOnPrompt(req.Params, refs.Summary)
	images := make([]gemini.Image, 0, len(refs.Images)+1)
	images = append(images, s.modelInput(req.Scene.Image()))
	for _, ref := range refs.Images {
		images = append(images, s.modelInput(ref))
	}

	out, err := s.generator.Generate(ctx, prompt, images)
	if err != nil {
		return nil, err
	}

	resp := &TryOnResponse{Image: DataURI(out.Image), Text: out.Text}
	if out.Image == nil {
		s.logger.Info().Msg("try-on produced no image")
		return resp, nil
	}

	res := s.persister.Persist(ctx, PersistInput{
		Params:      req.Params,
		Original:    req.Scene,
		Generated:   *out.Image,
		Description: out.Text,
	})
	resp.DesignID = res.DesignID
	resp.GeneratedImageURL = res.GeneratedURL

	ev := s.logger.Info().Int("furniture", len(refs.Items)).Int("furniture_images", len(refs.Images))
	for _, step := range res.Steps {
		ev = ev.Str(step.Step, step.Status.String())
	}
	ev.Msg("try-on complete")
	return resp, nil
}

// PlaceFurniture composites the uploaded furniture into an existing design.
// Uploads are validated before the design lookup, and an unknown design fails
// with domain.ErrNotFound before the model is called. Nothing is persisted.
func (s *Service) PlaceFurniture(ctx context.Context, req PlacementRequest) (*PlacementResponse, error) {
	for i, up := range req.Furniture {
		if err := ValidateImage(up, "", i+1); err != nil {
			return nil, err
		}
	}

	design, err := s.designs.GetByID(ctx, req.RoomDesignID)
	if err != nil {
		return nil, err
	}
	if design.GeneratedImageURL == nil {
		return nil, ErrRoomImageFetch
	}
	room, err := s.fetcher.Fetch(ctx, *design.GeneratedImageURL)
	if err != nil {
		s.logger.Error().Err(err).Str("room_design_id", design.ID).Msg("room image fetch failed")
		return nil, ErrRoomImageFetch
	}

	images := make([]gemini.Image, 0, len(req.Furniture)+1)
	images = append(images, s.modelInput(room))
	for _, up := range req.Furniture {
		images = append(images, s.modelInput(up.Image()))
	}

	out, err := s.generator.Generate(ctx, BuildPlacementPrompt(*design, len(req.Furniture)), images)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_design_id", design.ID).Int("furniture", len(req.Furniture)).Bool("image", out.Image != nil).Msg("placement complete")
	return &PlacementResponse{Image: DataURI(out.Image), Text: out.Text, RoomDesignID: req.RoomDesignID}, nil
}

func (s *Service) modelInput(img gemini.Image) gemini.Image {
	scaled, err := imaging.Normalize(imaging.Image{Data: img.Data, MIME: img.MIME}, s.maxDim)
	if err != nil {
		s.logger.Warn().Err(err).Str("mime", img.MIME).Msg("image normalization failed, sending original")
		return img
	}
	return gemini.Image{Data: scaled.Data, MIME: scaled.MIME}
}
