package imagegen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"roomdesign/internal/domain"
	"roomdesign/internal/providers/gemini"
	"roomdesign/internal/storage"
)

var (
	jpegBytes = []byte("\xff\xd8\xff\xe0fake-jpeg")
	pngBytes  = []byte("\x89PNG\r\n\x1a\nfake-png")
)

type stubFurniture struct {
	items []domain.FurnitureItem
	err   error
	ids   []string
}

func (s *stubFurniture) ListByIDs(_ context.Context, ids []string) ([]domain.FurnitureItem, error) {
	s.ids = ids
	if s.err != nil {
		return nil, s.err
	}
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	var out []domain.FurnitureItem
	for _, item := range s.items {
		if wanted[item.ID] {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubDesigns struct {
	byID      map[string]*domain.RoomDesign
	created   []domain.NewRoomDesign
	createErr error
	lookups   int
}

func (s *stubDesigns) Create(_ context.Context, d domain.NewRoomDesign) (*domain.RoomDesign, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, d)
	return &domain.RoomDesign{ID: "design-1"}, nil
}

func (s *stubDesigns) GetByID(_ context.Context, id string) (*domain.RoomDesign, error) {
	s.lookups++
	if d, ok := s.byID[id]; ok {
		return d, nil
	}
	return nil, domain.ErrNotFound
}

type stubGenerator struct {
	out    gemini.Output
	err    error
	calls  int
	prompt string
	images []gemini.Image
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, images []gemini.Image) (gemini.Output, error) {
	s.calls++
	s.prompt = prompt
	s.images = images
	return s.out, s.err
}

// imageServer serves jpegBytes for every path except those containing "missing".
func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "missing") {
			http.NotFound(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, ".png") {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pngBytes)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(jpegBytes)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type fixture struct {
	store     *storage.MemoryStore
	furniture *stubFurniture
	designs   *stubDesigns
	generator *stubGenerator
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:     storage.NewMemoryStore("https://cdn.example.com"),
		furniture: &stubFurniture{},
		designs:   &stubDesigns{byID: map[string]*domain.RoomDesign{}},
		generator: &stubGenerator{},
	}
	logger := zerolog.Nop()
	fetcher := NewFetcher(nil, time.Second)
	f.service = NewService(ServiceOptions{
		Resolver:  NewResolver(f.furniture, fetcher, logger),
		Generator: f.generator,
		Persister: NewPersister(f.store, f.designs, "room-images", time.Second, logger),
		Designs:   f.designs,
		Fetcher:   fetcher,
		Logger:    logger,
	})
	return f
}
