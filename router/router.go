package router

import (
	"database/sql"
	"net/http"

	"tracedash/cliparse"
	"tracedash/dashboard"
	"tracedash/handlers"
	"tracedash/middleware"
	"tracedash/session"
	"tracedash/trace"
	"tracedash/web"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	gate := session.NewGate(cfg.AdminPassword, []byte(cfg.SessionHashKey), cfg.Production)
	store := trace.NewStore(db)
	registry := dashboard.NewRegistry(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(gate)
	userHandler := handlers.NewUserHandler(store)
	viewHandler := handlers.NewViewHandler(registry)
	pages := web.NewPages(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/auth", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("DELETE /api/auth", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /api/auth/check", middleware.WithLogging(authHandler.Check))

	// User directory (session required)
	mux.HandleFunc("GET /api/users", middleware.WithLogging(middleware.RequireSession(gate, userHandler.List)))

	// Dashboard views (session required)
	mux.HandleFunc("POST /api/views", middleware.WithLogging(middleware.RequireSession(gate, viewHandler.Create)))
	mux.HandleFunc("GET /api/views/{id}", middleware.WithLogging(middleware.RequireSession(gate, viewHandler.Snapshot)))
	mux.HandleFunc("POST /api/views/{id}/mode", middleware.WithLogging(middleware.RequireSession(gate, viewHandler.SetMode)))
	mux.HandleFunc("POST /api/views/{id}/selection", middleware.WithLogging(middleware.RequireSession(gate, viewHandler.ApplySelection)))
	mux.HandleFunc("POST /api/views/{id}/ready", middleware.WithLogging(middleware.RequireSession(gate, viewHandler.MarkReady)))

	// Pages
	mux.HandleFunc("GET /login", middleware.WithLogging(middleware.LoginRedirect(gate, pages.Login)))
	mux.HandleFunc("GET /{$}", middleware.WithLogging(middleware.PageGate(gate, pages.Dashboard)))

	return mux
}
