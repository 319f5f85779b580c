package imagegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"roomdesign/internal/domain"
	"roomdesign/internal/providers/gemini"
)

const furnitureSummaryHeader = "\n\n### User's Furniture to Include:\n"

// References is what the resolver contributes to a try-on prompt.
type References struct {
	Summary string
	Items   []domain.FurnitureItem
	Images  []gemini.Image
}

// Resolver turns furniture ids into prompt text and reference images.
type Resolver struct {
	furniture FurnitureLookup
	fetcher   *Fetcher
	logger    zerolog.Logger
}

func NewResolver(furniture FurnitureLookup, fetcher *Fetcher, logger zerolog.Logger) *Resolver {
	return &Resolver{furniture: furniture, fetcher: fetcher, logger: logger}
}

// ParseFurnitureIDs splits a comma-separated id list, dropping blanks.
func ParseFurnitureIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Resolve looks up ids in one query and downloads each item's image. Unknown
// ids are omitted. An item whose image cannot be fetched still appears in the
// summary. Order follows the rows returned by the store.
func (r *Resolver) Resolve(ctx context.Context, ids []string) (References, error) {
	if len(ids) == 0 {
		return References{}, nil
	}
	items, err := r.furniture.ListByIDs(ctx, ids)
	if err != nil {
		return References{}, fmt.Errorf("resolve furniture: %w", err)
	}
	refs := References{Items: items, Summary: FurnitureSummary(items)}
	for _, item := range items {
		img, err := r.fetcher.Fetch(ctx, item.ImageURL)
		if err != nil {
			r.logger.Warn().Err(err).Str("furniture_id", item.ID).Msg("furniture image fetch failed")
			continue
		}
		refs.Images = append(refs.Images, img)
	}
	r.logger.Debug().Int("requested", len(ids)).Int("found", len(items)).Int("images", len(refs.Images)).Msg("furniture resolved")
	return refs, nil
}

// FurnitureSummary renders the numbered furniture block, or "" for no items.
func FurnitureSummary(items []domain.FurnitureItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(furnitureSummaryHeader)
	for i, item := range items {
		fmt.Fprintf(&b, "%d. **%s** (Category: %s)\n", i+1, item.Name, item.Category)
	}
	return b.String()
}
