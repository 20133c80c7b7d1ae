package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracedash/models"
	"tracedash/testutil"
	"tracedash/trace"
)

func TestUserList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewUserHandler(trace.NewStore(conn))

	now := time.Now().UTC()
	testutil.InsertTestTrace(t, conn, "user-a", 2, 40.0, -74.5, now)
	testutil.InsertTestTrace(t, conn, "user-b", 1, 51.5, -0.1, now)
	testutil.CreateTestProfile(t, conn, "user-a", "alice")

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest("GET", "/api/users", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var options []models.UserOption
	testutil.AssertJSON(t, w, &options)

	if len(options) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(options))
	}
	if options[0].Label != "alice" {
		t.Errorf("Expected profile name 'alice', got %q", options[0].Label)
	}
	if options[1].Label != trace.FallbackName("user-b") {
		t.Errorf("Expected fallback label for user-b, got %q", options[1].Label)
	}
}

func TestUserList_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewUserHandler(trace.NewStore(conn))

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest("GET", "/api/users", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	// Empty directory is [] rather than null.
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}
}
