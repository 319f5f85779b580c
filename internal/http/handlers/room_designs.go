package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"roomdesign/internal/adapter/repo"
	"roomdesign/internal/storage"
	"roomdesign/pkg/zip"
)

const roomDesignNotFound = "Room design not found"

// ListRoomDesigns handles GET /api/room-designs/list?limit=.
func (a *App) ListRoomDesigns(w http.ResponseWriter, r *http.Request) {
	limit := repo.DefaultDesignListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.error(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	designs, err := a.Designs.List(r.Context(), limit)
	if err != nil {
		a.fail(w, r, err, "")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"designs": designs})
}

// GetRoomDesign handles GET /api/room-designs/{id}.
func (a *App) GetRoomDesign(w http.ResponseWriter, r *http.Request) {
	design, err := a.Designs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, roomDesignNotFound)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"design": design})
}

// DeleteRoomDesign handles DELETE /api/room-designs/{id}. Object removal is
// best-effort; the row is always deleted.
func (a *App) DeleteRoomDesign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	design, err := a.Designs.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, roomDesignNotFound)
		return
	}
	for _, url := range []*string{design.OriginalImageURL, design.GeneratedImageURL} {
		if url == nil {
			continue
		}
		key, ok := storage.KeyFromURL(a.RoomBucket, *url)
		if !ok {
			continue
		}
		if err := a.remove(r.Context(), a.RoomBucket, key); err != nil {
			a.Logger.Warn().Err(err).Str("room_design_id", id).Str("key", key).Msg("room image delete failed")
		}
	}
	if err := a.Designs.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, roomDesignNotFound)
		return
	}
	a.Logger.Info().Str("room_design_id", id).Msg("room design deleted")
	a.json(w, http.StatusOK, map[string]string{"message": "Room design deleted successfully"})
}

// ArchiveRoomDesign handles GET /api/room-designs/{id}/archive, returning a
// zip of the stored original and generated images.
func (a *App) ArchiveRoomDesign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	design, err := a.Designs.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, roomDesignNotFound)
		return
	}

	var entries []zip.Entry
	for _, url := range []*string{design.OriginalImageURL, design.GeneratedImageURL} {
		if url == nil {
			continue
		}
		key, ok := storage.KeyFromURL(a.RoomBucket, *url)
		if !ok {
			continue
		}
		ctx, cancel := a.storageContext(r.Context())
		data, err := a.Store.Get(ctx, a.RoomBucket, key)
		cancel()
		if err != nil {
			a.fail(w, r, fmt.Errorf("archive %s: %w", key, err), "")
			return
		}
		entries = append(entries, zip.Entry{Name: path.Base(key), Data: data, Modified: design.CreatedAt})
	}
	if len(entries) == 0 {
		a.error(w, http.StatusNotFound, "Room design has no stored images")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="room-design-%s.zip"`, design.ID))
	if err := zip.Write(w, entries); err != nil {
		a.logError(r, err)
	}
}
