package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"tracedash/cliparse"
)

// Pages serves the two HTML surfaces: the login page and the dashboard.
// Everything dynamic happens through the JSON API; the pages are thin
// shells that carry the map token and the frontend wiring.
type Pages struct {
	cfg       cliparse.Config
	login     *template.Template
	dashboard *template.Template
}

func NewPages(cfg cliparse.Config) *Pages {
	return &Pages{
		cfg:       cfg,
		login:     template.Must(template.New("login").Parse(tmplLogin)),
		dashboard: template.Must(template.New("dashboard").Parse(tmplDashboard)),
	}
}

// Login handles GET /login
func (p *Pages) Login(w http.ResponseWriter, r *http.Request) {
	p.render(w, p.login, nil)
}

// Dashboard handles GET /
func (p *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	p.render(w, p.dashboard, struct {
		MapboxToken string
	}{
		MapboxToken: p.cfg.MapboxToken,
	})
}

func (p *Pages) render(w http.ResponseWriter, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		slog.Error("failed to render page", "template", t.Name(), "error", err)
	}
}
