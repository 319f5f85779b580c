package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"roomdesign/internal/http/handlers"
	"roomdesign/internal/middleware"
)

// Options configures the router. StaticDir, when set, is served under
// /static so filesystem-backed public URLs resolve.
type Options struct {
	Logger    zerolog.Logger
	Countries middleware.CountryResolver
	StaticDir string
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger, opts.Countries),
		middleware.Recoverer(opts.Logger),
		middleware.CORS,
	)

	r.NotFound(app.NotFound)
	r.MethodNotAllowed(app.MethodNotAllowed)

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/furniture", func(r chi.Router) {
			r.Post("/upload", app.UploadFurniture)
			r.Get("/list", app.ListFurniture)
			r.Get("/{id}", app.GetFurniture)
			r.Delete("/{id}", app.DeleteFurniture)
		})
		r.Post("/try-on", app.TryOn)
		r.Post("/furniture-placement", app.PlaceFurniture)
		r.Route("/room-designs", func(r chi.Router) {
			r.Get("/list", app.ListRoomDesigns)
			r.Get("/{id}", app.GetRoomDesign)
			r.Get("/{id}/archive", app.ArchiveRoomDesign)
			r.Delete("/{id}", app.DeleteRoomDesign)
		})
	})

	if opts.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
