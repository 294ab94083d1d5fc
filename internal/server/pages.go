// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

var landingTemplate = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>MaRDI FDO</title>
{{- if .Static}}
<link rel="stylesheet" href="/static/style.css">
{{- end}}
</head>
<body>
<h1>MaRDI FAIR Digital Objects</h1>
<p>Request <code>/fdo/{QID}</code> to get the FDO JSON-LD document for a MaRDI knowledge graph item,
for example <a href="/fdo/Q6830223">/fdo/Q6830223</a>.</p>
<p>Version {{.Version}}</p>
</body>
</html>
`))

// PagesHandler serves the landing page, health check, favicon and static
// assets.
type PagesHandler struct {
	version   string
	staticDir string
	logger    *zap.Logger
}

// NewPagesHandler creates a PagesHandler. staticDir may be empty.
func NewPagesHandler(version, staticDir string, logger *zap.Logger) *PagesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PagesHandler{version: version, staticDir: staticDir, logger: logger}
}

// RegisterRoutes registers the page routes on mux.
func (h *PagesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Landing)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /favicon.ico", h.Favicon)
	if h.staticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	}
}

// Landing handles GET /.
func (h *PagesHandler) Landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Version string
		Static  bool
	}{h.version, h.staticDir != ""}
	if err := landingTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render landing page", zap.Error(err))
	}
}

// Health handles GET /health.
func (h *PagesHandler) Health(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Favicon handles GET /favicon.ico with an empty response.
func (h *PagesHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
