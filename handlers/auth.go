package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"tracedash/middleware"
	"tracedash/models"
	"tracedash/session"
)

type AuthHandler struct {
	gate *session.Gate
}

func NewAuthHandler(gate *session.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// Login handles POST /api/auth
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		slog.Error("failed to parse login request", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	cookie, err := h.gate.Login(req.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		slog.Info("login rejected", "remote", middleware.GetClientIP(r))
		middleware.JSONResponse(w, http.StatusUnauthorized, models.AuthResponse{
			Success: false,
			Message: "Invalid password",
		})
		return
	}
	if err != nil {
		slog.Error("failed to issue session cookie", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	http.SetCookie(w, cookie)
	slog.Info("operator logged in", "remote", middleware.GetClientIP(r))
	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{Success: true})
}

// Logout handles DELETE /api/auth. Always succeeds: the client is logged
// out no matter what.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.gate.Logout())
	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{Success: true})
}

// Check handles GET /api/auth/check
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.gate.Check(r) {
		middleware.JSONResponse(w, http.StatusOK, models.CheckResponse{Authenticated: true})
		return
	}
	middleware.JSONResponse(w, http.StatusUnauthorized, models.CheckResponse{Authenticated: false})
}
