package handlers

import (
	"net/http"

	"tracedash/dashboard"
	"tracedash/middleware"
	"tracedash/models"
)

type ViewHandler struct {
	registry *dashboard.Registry
}

func NewViewHandler(registry *dashboard.Registry) *ViewHandler {
	return &ViewHandler{registry: registry}
}

// Create handles POST /api/views - one view per dashboard page load.
func (h *ViewHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := h.registry.Create()
	middleware.JSONResponse(w, http.StatusCreated, models.CreateViewResponse{ViewID: id})
}

// SetMode handles POST /api/views/{id}/mode
func (h *ViewHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	var req models.ModeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Mode != models.ModeUser && req.Mode != models.ModeFilter {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mode must be user or filter")
		return
	}

	view.SetMode(req.Mode)
	middleware.JSONResponse(w, http.StatusOK, view.Snapshot())
}

// ApplySelection handles POST /api/views/{id}/selection
func (h *ViewHandler) ApplySelection(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	var req models.SelectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.Mode {
	case models.ModeUser:
		view.SelectUser(req.UserID)
	case models.ModeFilter:
		criteria := models.FilterCriteria{}
		if req.Criteria != nil {
			criteria = *req.Criteria
		}
		view.SelectFilter(criteria)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "mode must be user or filter")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view.Snapshot())
}

// MarkReady handles POST /api/views/{id}/ready - the browser map surface
// finished loading and queued updates may flush.
func (h *ViewHandler) MarkReady(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	view.MarkReady()
	middleware.JSONResponse(w, http.StatusOK, view.Snapshot())
}

// Snapshot handles GET /api/views/{id} - the polled view state.
func (h *ViewHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view.Snapshot())
}

func (h *ViewHandler) view(w http.ResponseWriter, r *http.Request) (*dashboard.View, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "view id is required")
		return nil, false
	}

	view, ok := h.registry.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "View not found")
		return nil, false
	}
	return view, true
}
