// Package httpapi wires the HTTP surface: routing, middleware ordering and
// static asset serving.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"nanofloor/internal/http/handlers"
	"nanofloor/internal/middleware"
)

// NewRouter builds the service router. Locale detection runs before auth so
// that 401 bodies are localized too.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.I18N(app.Config.DefaultLocale, app.CountryLookup))

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/floor", func(r chi.Router) {
		r.Use(middleware.SessionAuth(app.Config.SessionSecret))
		r.Get("/presets", app.ListPresets)
		r.Get("/materials", app.ListMaterials)
		r.Post("/process", app.Process)
	})

	if app.Config.StoragePath != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(app.Config.StoragePath)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
