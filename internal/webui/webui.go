package webui

import (
	"embed"
	"html/template"

	"launchdash.dev/internal/app"
)

//go:embed dashboard_index.html debug_index.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "*.html"))

// WebUI serves the dashboard page and the debug views.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
