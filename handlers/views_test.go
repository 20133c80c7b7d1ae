package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracedash/dashboard"
	"tracedash/models"
	"tracedash/testutil"
	"tracedash/trace"
)

func setupViewHandler(t *testing.T) (*ViewHandler, *trace.Store) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	store := trace.NewStore(conn)
	return NewViewHandler(dashboard.NewRegistry(store)), store
}

func createView(t *testing.T, h *ViewHandler) string {
	t.Helper()

	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest("POST", "/api/views", nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateViewResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ViewID == "" {
		t.Fatal("Expected a view id")
	}
	return resp.ViewID
}

func viewRequest(method, path, id string, body interface{}) *http.Request {
	req := testutil.MakeRequest(method, path, body, nil)
	req.SetPathValue("id", id)
	return req
}

func markReady(t *testing.T, h *ViewHandler, id string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.MarkReady(w, viewRequest("POST", "/api/views/"+id+"/ready", id, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

// pollSnapshot polls GET /api/views/{id} until the state leaves loading.
func pollSnapshot(t *testing.T, h *ViewHandler, id string) dashboard.Snapshot {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := httptest.NewRecorder()
		h.Snapshot(w, viewRequest("GET", "/api/views/"+id, id, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var snap dashboard.Snapshot
		testutil.AssertJSON(t, w, &snap)
		if snap.State != models.StateLoading {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("View stuck in loading state")
	return dashboard.Snapshot{}
}

func TestViewLifecycle_UnknownUserIsNoData(t *testing.T) {
	h, _ := setupViewHandler(t)

	id := createView(t, h)
	markReady(t, h, id)

	w := httptest.NewRecorder()
	h.ApplySelection(w, viewRequest("POST", "/api/views/"+id+"/selection", id,
		models.SelectionRequest{Mode: models.ModeUser, UserID: "abc123"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	snap := pollSnapshot(t, h, id)
	if snap.State != models.StateNoData {
		t.Errorf("State = %q, want no-data for unknown user", snap.State)
	}
}

func TestViewLifecycle_RendersSeededTrace(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := trace.NewStore(conn)
	h := NewViewHandler(dashboard.NewRegistry(store))

	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	testutil.InsertTestTrace(t, conn, "abc123", 3, 40.0, -74.5, start)
	testutil.CreateTestProfile(t, conn, "abc123", "alice")

	id := createView(t, h)
	markReady(t, h, id)

	w := httptest.NewRecorder()
	h.ApplySelection(w, viewRequest("POST", "/api/views/"+id+"/selection", id,
		models.SelectionRequest{Mode: models.ModeUser, UserID: "abc123"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	snap := pollSnapshot(t, h, id)
	if snap.State != models.StateReady {
		t.Fatalf("State = %q, want ready", snap.State)
	}
	if snap.PointCount != 3 {
		t.Errorf("PointCount = %d, want 3", snap.PointCount)
	}
	if snap.DisplayName != "alice" {
		t.Errorf("DisplayName = %q, want alice", snap.DisplayName)
	}
	if len(snap.Map.Markers) != 3 || len(snap.Map.Layers) != 1 {
		t.Errorf("Map document: %d markers, %d layers; want 3 and 1",
			len(snap.Map.Markers), len(snap.Map.Layers))
	}
	if snap.Map.Viewport == nil {
		t.Error("Expected viewport framing for the rendered trace")
	}
}

func TestViewLifecycle_FilterSelection(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := trace.NewStore(conn)
	h := NewViewHandler(dashboard.NewRegistry(store))

	now := time.Now().UTC()
	testutil.InsertTestPoint(t, conn, models.LocationPoint{
		UserID: "u1", Latitude: 40, Longitude: -74, CreatedAt: now,
		AgeRange: "25-34", Gender: "Female", CommuteMode: "Bike",
	})
	testutil.InsertTestPoint(t, conn, models.LocationPoint{
		UserID: "u2", Latitude: 41, Longitude: -75, CreatedAt: now,
		AgeRange: "35-44", Gender: "Male", CommuteMode: "Car",
	})

	id := createView(t, h)
	markReady(t, h, id)

	w := httptest.NewRecorder()
	h.ApplySelection(w, viewRequest("POST", "/api/views/"+id+"/selection", id,
		models.SelectionRequest{
			Mode:     models.ModeFilter,
			Criteria: &models.FilterCriteria{Gender: "Female"},
		}))
	testutil.AssertStatus(t, w, http.StatusOK)

	snap := pollSnapshot(t, h, id)
	if snap.State != models.StateReady || snap.PointCount != 1 {
		t.Errorf("State = %q PointCount = %d, want ready with 1 point", snap.State, snap.PointCount)
	}
}

func TestApplySelection_EmptyFilterClearsImmediately(t *testing.T) {
	h, _ := setupViewHandler(t)

	id := createView(t, h)
	markReady(t, h, id)

	w := httptest.NewRecorder()
	h.ApplySelection(w, viewRequest("POST", "/api/views/"+id+"/selection", id,
		models.SelectionRequest{Mode: models.ModeFilter, Criteria: &models.FilterCriteria{}}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap dashboard.Snapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.State != models.StateNoSelection {
		t.Errorf("State = %q, want no-selection without polling", snap.State)
	}
}

func TestApplySelection_BadRequests(t *testing.T) {
	h, _ := setupViewHandler(t)
	id := createView(t, h)

	t.Run("unknown mode", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ApplySelection(w, viewRequest("POST", "/api/views/"+id+"/selection", id,
			models.SelectionRequest{Mode: "heatmap"}))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown view", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ApplySelection(w, viewRequest("POST", "/api/views/nope/selection", "nope",
			models.SelectionRequest{Mode: models.ModeUser, UserID: "abc"}))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestSetMode_Endpoint(t *testing.T) {
	h, _ := setupViewHandler(t)
	id := createView(t, h)
	markReady(t, h, id)

	w := httptest.NewRecorder()
	h.SetMode(w, viewRequest("POST", "/api/views/"+id+"/mode", id,
		models.ModeRequest{Mode: models.ModeFilter}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap dashboard.Snapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Mode != models.ModeFilter {
		t.Errorf("Mode = %q, want filter", snap.Mode)
	}
	if snap.State != models.StateNoSelection {
		t.Errorf("State = %q, want no-selection after mode change", snap.State)
	}

	w = httptest.NewRecorder()
	h.SetMode(w, viewRequest("POST", "/api/views/"+id+"/mode", id,
		models.ModeRequest{Mode: "bogus"}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
