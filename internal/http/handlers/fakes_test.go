package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"roomdesign/internal/domain"
	"roomdesign/internal/imagegen"
	"roomdesign/internal/storage"
)

var jpegBytes = []byte("\xff\xd8\xff\xe0fake-jpeg")

type memFurniture struct {
	mu        sync.Mutex
	items     map[string]domain.FurnitureItem
	seq       int
	createErr error
}

func newMemFurniture() *memFurniture {
	return &memFurniture{items: map[string]domain.FurnitureItem{}}
}

func (m *memFurniture) Create(_ context.Context, in domain.NewFurnitureItem) (*domain.FurnitureItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.seq++
	item := domain.FurnitureItem{
		ID:        fmt.Sprintf("f-%d", m.seq),
		Name:      in.Name,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, m.seq, 0, time.UTC),
	}
	m.items[item.ID] = item
	return &item, nil
}

func (m *memFurniture) List(_ context.Context, category string) ([]domain.FurnitureItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.FurnitureItem, 0, len(m.items))
	for _, item := range m.items {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memFurniture) GetByID(_ context.Context, id string) (*domain.FurnitureItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (m *memFurniture) ListByIDs(ctx context.Context, ids []string) ([]domain.FurnitureItem, error) {
	var out []domain.FurnitureItem
	for _, id := range ids {
		if item, err := m.GetByID(ctx, id); err == nil {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *memFurniture) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memDesigns struct {
	mu      sync.Mutex
	designs map[string]domain.RoomDesign
	limit   int
}

func newMemDesigns() *memDesigns {
	return &memDesigns{designs: map[string]domain.RoomDesign{}}
}

func (m *memDesigns) Create(_ context.Context, in domain.NewRoomDesign) (*domain.RoomDesign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := fmt.Sprintf("d-%d", len(m.designs)+1)
	original, generated := in.OriginalImageURL, in.GeneratedImageURL
	d := domain.RoomDesign{ID: id, OriginalImageURL: &original, GeneratedImageURL: &generated, DesignType: in.DesignType, RoomType: in.RoomType, Style: in.Style, Description: in.Description}
	m.designs[id] = d
	return &d, nil
}

func (m *memDesigns) List(_ context.Context, limit int) ([]domain.RoomDesign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limit = limit
	out := make([]domain.RoomDesign, 0, len(m.designs))
	for _, d := range m.designs {
		out = append(out, d)
	}
	return out, nil
}

func (m *memDesigns) GetByID(_ context.Context, id string) (*domain.RoomDesign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.designs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (m *memDesigns) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.designs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.designs, id)
	return nil
}

type stubPipeline struct {
	tryOn     *imagegen.TryOnResponse
	placement *imagegen.PlacementResponse
	err       error
	tryOnReq  imagegen.TryOnRequest
	placeReq  imagegen.PlacementRequest
}

func (s *stubPipeline) TryOn(_ context.Context, req imagegen.TryOnRequest) (*imagegen.TryOnResponse, error) {
	s.tryOnReq = req
	return s.tryOn, s.err
}

func (s *stubPipeline) PlaceFurniture(_ context.Context, req imagegen.PlacementRequest) (*imagegen.PlacementResponse, error) {
	s.placeReq = req
	return s.placement, s.err
}

type env struct {
	app       *App
	store     *storage.MemoryStore
	furniture *memFurniture
	designs   *memDesigns
	pipeline  *stubPipeline
	router    http.Handler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		store:     storage.NewMemoryStore("http://localhost:8080/static"),
		furniture: newMemFurniture(),
		designs:   newMemDesigns(),
		pipeline:  &stubPipeline{},
	}
	e.app = &App{
		Furniture:       e.furniture,
		Designs:         e.designs,
		Store:           e.store,
		Images:          e.pipeline,
		FurnitureBucket: "furniture-images",
		RoomBucket:      "room-images",
		StorageTimeout:  time.Second,
		Logger:          zerolog.Nop(),
	}
	r := chi.NewRouter()
	r.Get("/healthz", e.app.Health)
	r.Post("/api/furniture/upload", e.app.UploadFurniture)
	r.Get("/api/furniture/list", e.app.ListFurniture)
	r.Get("/api/furniture/{id}", e.app.GetFurniture)
	r.Delete("/api/furniture/{id}", e.app.DeleteFurniture)
	r.Post("/api/try-on", e.app.TryOn)
	r.Post("/api/furniture-placement", e.app.PlaceFurniture)
	r.Get("/api/room-designs/list", e.app.ListRoomDesigns)
	r.Get("/api/room-designs/{id}", e.app.GetRoomDesign)
	r.Get("/api/room-designs/{id}/archive", e.app.ArchiveRoomDesign)
	r.Delete("/api/room-designs/{id}", e.app.DeleteRoomDesign)
	e.router = r
	return e
}

func (e *env) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files ...filePart) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = w.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
