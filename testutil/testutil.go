package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tracedash/cliparse"
	"tracedash/db"
	"tracedash/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database; nothing leaks between tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second pool connection would see a different empty :memory: database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           4316,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		AdminPassword:  "test-password",
		SessionHashKey: "test-hash-key-32-bytes-long-....",
	}
}

// InsertTestPoint inserts one location sample and returns its row ID.
func InsertTestPoint(t *testing.T, conn *sql.DB, p models.LocationPoint) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO location_point (id, user_id, latitude, longitude, speed, age_range, gender, commute_mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, p.UserID, p.Latitude, p.Longitude, p.Speed,
		nullable(p.AgeRange), nullable(p.Gender), nullable(p.CommuteMode), p.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to insert test point: %v", err)
	}

	return id
}

// InsertTestTrace inserts count points for a user, one minute apart
// starting at start, walking north-east from (lat, lng).
func InsertTestTrace(t *testing.T, conn *sql.DB, userID string, count int, lat, lng float64, start time.Time) {
	t.Helper()

	for i := 0; i < count; i++ {
		InsertTestPoint(t, conn, models.LocationPoint{
			UserID:    userID,
			Latitude:  lat + float64(i)*0.001,
			Longitude: lng + float64(i)*0.001,
			Speed:     10 + float64(i),
			CreatedAt: start.Add(time.Duration(i) * time.Minute),
		})
	}
}

// CreateTestProfile registers a display name for a user.
func CreateTestProfile(t *testing.T, conn *sql.DB, userID, username string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO profile (user_id, username) VALUES ($1, $2)
	`, userID, username)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
