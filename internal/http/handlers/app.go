package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"horrorgen/internal/catalog"
	"horrorgen/internal/domain"
	"horrorgen/internal/infra"
	"horrorgen/internal/providers/media"
	"horrorgen/internal/providers/story"
)

// App holds the collaborators shared by every HTTP handler. Nothing in it is
// mutated after NewApp returns.
type App struct {
	Config  *infra.Config
	Logger  infra.Logger
	Catalog *catalog.Catalog
	Stories story.Producer
	Media   media.Encoder
	Metrics *Metrics

	page *template.Template
}

func NewApp(cfg *infra.Config, logger infra.Logger, cat *catalog.Catalog, stories story.Producer, enc media.Encoder, reg *prometheus.Registry) (*App, error) {
	page, err := parsePage()
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:  cfg,
		Logger:  logger,
		Catalog: cat,
		Stories: stories,
		Media:   enc,
		Metrics: metrics,
		page:    page,
	}, nil
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, domain.ErrorResponse{Error: message})
}

// NotFoundJSON answers unknown API routes.
func (a *App) NotFoundJSON(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusNotFound, "not found")
}

// MethodNotAllowedJSON answers known API routes hit with the wrong method.
func (a *App) MethodNotAllowedJSON(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusMethodNotAllowed, "method not allowed")
}
