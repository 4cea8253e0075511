package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed web/index.html
var webFS embed.FS

const (
	pageDescription = "Generate engaging horror stories with deep voice narration and atmospheric sound effects"
	pageLoadingCopy = "Crafting your nightmare... This may take 30-60 seconds"
	generatePath    = "/api/generate"
)

type pageData struct {
	Title       string
	Description string
	LoadingCopy string
	Endpoint    string
}

func parsePage() (*template.Template, error) {
	return template.ParseFS(webFS, "web/index.html")
}

// Index serves the single client page.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := a.page.Execute(&buf, pageData{
		Title:       a.Config.PageTitle,
		Description: pageDescription,
		LoadingCopy: pageLoadingCopy,
		Endpoint:    generatePath,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("render index page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
