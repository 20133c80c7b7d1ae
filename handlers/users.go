package handlers

import (
	"log/slog"
	"net/http"

	"tracedash/middleware"
	"tracedash/models"
	"tracedash/trace"
)

type UserHandler struct {
	store *trace.Store
}

func NewUserHandler(store *trace.Store) *UserHandler {
	return &UserHandler{store: store}
}

// List handles GET /api/users - the user directory for the selector.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	options, err := h.store.ListUsers(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load user IDs")
		return
	}

	if options == nil {
		options = []models.UserOption{}
	}
	middleware.JSONResponse(w, http.StatusOK, options)
}
