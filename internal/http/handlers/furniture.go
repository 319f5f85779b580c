package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"roomdesign/internal/domain"
	"roomdesign/internal/imagegen"
	"roomdesign/internal/storage"
)

const furnitureNotFound = "Furniture not found"

// foldCategory is the canonical form used to store and filter categories.
func foldCategory(category string) string {
	return cases.Fold().String(strings.TrimSpace(category))
}

// UploadFurniture handles POST /api/furniture/upload.
func (a *App) UploadFurniture(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(w, r)
	if err != nil {
		a.fail(w, r, err, "")
		return
	}
	upload, ok := f.file("furniture_image")
	if !ok {
		a.error(w, http.StatusBadRequest, "furniture_image is required")
		return
	}
	name, category := f.value("name"), foldCategory(f.value("category"))
	if name == "" || category == "" {
		a.error(w, http.StatusBadRequest, "name and category are required")
		return
	}
	if err := imagegen.ValidateImage(upload, "", 0); err != nil {
		a.fail(w, r, err, "")
		return
	}

	key := fmt.Sprintf("furniture/%s.%s", uuid.NewString(), imagegen.FileExtension(upload))
	if err := a.put(r.Context(), a.FurnitureBucket, key, upload); err != nil {
		a.logError(r, err)
		a.error(w, http.StatusInternalServerError, "Storage upload failed")
		return
	}
	url := a.Store.PublicURL(a.FurnitureBucket, key)

	item, err := a.Furniture.Create(r.Context(), domain.NewFurnitureItem{Name: name, Category: category, ImageURL: url})
	if err != nil {
		a.logError(r, fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err))
		if derr := a.remove(r.Context(), a.FurnitureBucket, key); derr != nil {
			a.logError(r, derr)
		}
		a.error(w, http.StatusInternalServerError, "Failed to save furniture to database")
		return
	}

	a.Logger.Info().Str("furniture_id", item.ID).Str("category", category).Msg("furniture uploaded")
	a.json(w, http.StatusOK, map[string]any{
		"id":        item.ID,
		"name":      item.Name,
		"category":  item.Category,
		"image_url": item.ImageURL,
		"message":   "Furniture uploaded successfully",
	})
}

// ListFurniture handles GET /api/furniture/list?category=.
func (a *App) ListFurniture(w http.ResponseWriter, r *http.Request) {
	items, err := a.Furniture.List(r.Context(), foldCategory(r.URL.Query().Get("category")))
	if err != nil {
		a.fail(w, r, err, "")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"furniture": items})
}

// GetFurniture handles GET /api/furniture/{id}.
func (a *App) GetFurniture(w http.ResponseWriter, r *http.Request) {
	item, err := a.Furniture.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err, furnitureNotFound)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"furniture": item})
}

// DeleteFurniture handles DELETE /api/furniture/{id}: the stored image goes
// first, then the row.
func (a *App) DeleteFurniture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := a.Furniture.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, furnitureNotFound)
		return
	}
	if key, ok := storage.KeyFromURL(a.FurnitureBucket, item.ImageURL); ok {
		if err := a.remove(r.Context(), a.FurnitureBucket, key); err != nil {
			a.fail(w, r, err, "")
			return
		}
	}
	if err := a.Furniture.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, furnitureNotFound)
		return
	}
	a.Logger.Info().Str("furniture_id", id).Msg("furniture deleted")
	a.json(w, http.StatusOK, map[string]string{"message": "Furniture deleted successfully"})
}

func (a *App) put(ctx context.Context, bucket, key string, up imagegen.Upload) error {
	ctx, cancel := a.storageContext(ctx)
	defer cancel()
	if err := a.Store.Put(ctx, bucket, key, up.Data, up.ContentType); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	return nil
}

func (a *App) remove(ctx context.Context, bucket, key string) error {
	ctx, cancel := a.storageContext(ctx)
	defer cancel()
	return a.Store.Delete(ctx, bucket, key)
}

func (a *App) storageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.StorageTimeout <= 0 {
		return context.WithTimeout(ctx, imagegen.DefaultStorageTimeout)
	}
	return context.WithTimeout(ctx, a.StorageTimeout)
}
