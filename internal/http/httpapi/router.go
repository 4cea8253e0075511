package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"horrorgen/internal/http/handlers"
	"horrorgen/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Logger),
		middleware.Recoverer(app.Logger),
		middleware.CORS(app.Config.CORSAllowedOrigins),
	)

	// Client page
	r.Get("/", app.Index)

	// Ops
	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)
	r.Method(http.MethodGet, "/metrics", app.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.NotFound(app.NotFoundJSON)
		r.MethodNotAllowed(app.MethodNotAllowedJSON)
		r.Post("/generate", app.Generate)
	})

	return r
}
