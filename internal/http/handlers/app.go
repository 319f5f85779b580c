package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"roomdesign/internal/domain"
	"roomdesign/internal/imagegen"
	"roomdesign/internal/middleware"
	"roomdesign/internal/storage"
)

const internalErrorDetail = "Internal Server Error"

// Pipeline is the image generation surface the handlers call.
type Pipeline interface {
	TryOn(ctx context.Context, req imagegen.TryOnRequest) (*imagegen.TryOnResponse, error)
	PlaceFurniture(ctx context.Context, req imagegen.PlacementRequest) (*imagegen.PlacementResponse, error)
}

// App holds the dependencies shared by every handler.
type App struct {
	Furniture       domain.FurnitureRepository
	Designs         domain.RoomDesignRepository
	Store           storage.ObjectStore
	Images          Pipeline
	FurnitureBucket string
	RoomBucket      string
	StorageTimeout  time.Duration
	DB              Pinger
	Logger          zerolog.Logger
}

// Pinger reports database reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, detail string) {
	a.json(w, code, map[string]string{"detail": detail})
}

// fail maps err to a status and detail. Validation and bad request messages
// pass through, domain.ErrNotFound becomes 404 with notFound, everything else
// is logged and collapsed to 500.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *imagegen.ValidationError
	var berr badRequestError
	switch {
	case errors.As(err, &verr):
		a.error(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &berr):
		a.error(w, http.StatusBadRequest, berr.Error())
	case errors.Is(err, domain.ErrNotFound) && notFound != "":
		a.error(w, http.StatusNotFound, notFound)
	case errors.Is(err, imagegen.ErrRoomImageFetch):
		a.logError(r, err)
		a.error(w, http.StatusInternalServerError, "Failed to fetch room design image")
	default:
		a.logError(r, err)
		a.error(w, http.StatusInternalServerError, internalErrorDetail)
	}
}

func (a *App) logError(r *http.Request, err error) {
	route := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		route = rctx.RoutePattern()
	}
	a.Logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("method", r.Method).
		Str("route", route).
		Msg("request failed")
}

type badRequestError string

func (e badRequestError) Error() string { return string(e) }

// NotFound answers unmatched routes with the JSON error shape.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers known paths requested with an unsupported method.
func (a *App) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
