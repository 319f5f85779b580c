package handlers

import (
	"net/http"

	"roomdesign/internal/domain"
	"roomdesign/internal/imagegen"
)

// TryOn handles POST /api/try-on.
func (a *App) TryOn(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(w, r)
	if err != nil {
		a.fail(w, r, err, "")
		return
	}
	scene, ok := f.file("place_image")
	if !ok {
		a.error(w, http.StatusBadRequest, "place_image is required")
		return
	}
	if err := requireFields(f, "design_type", "room_type", "style", "background_color", "foreground_color"); err != nil {
		a.fail(w, r, err, "")
		return
	}

	resp, err := a.Images.TryOn(r.Context(), imagegen.TryOnRequest{
		Params: domain.DesignParams{
			DesignType:      f.value("design_type"),
			RoomType:        f.value("room_type"),
			Style:           f.value("style"),
			BackgroundColor: f.value("background_color"),
			ForegroundColor: f.value("foreground_color"),
			Instructions:    f.value("instructions"),
		},
		Scene:        scene,
		FurnitureIDs: f.value("furniture_ids"),
	})
	if err != nil {
		a.fail(w, r, err, "")
		return
	}
	a.json(w, http.StatusOK, resp)
}

// PlaceFurniture handles POST /api/furniture-placement.
func (a *App) PlaceFurniture(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(w, r)
	if err != nil {
		a.fail(w, r, err, "")
		return
	}
	if err := requireFields(f, "room_design_id"); err != nil {
		a.fail(w, r, err, "")
		return
	}
	uploads := f.files["furniture_images"]
	if len(uploads) == 0 {
		a.error(w, http.StatusBadRequest, "furniture_images is required")
		return
	}

	resp, err := a.Images.PlaceFurniture(r.Context(), imagegen.PlacementRequest{
		RoomDesignID: f.value("room_design_id"),
		Furniture:    uploads,
	})
	if err != nil {
		a.fail(w, r, err, roomDesignNotFound)
		return
	}
	a.json(w, http.StatusOK, resp)
}
