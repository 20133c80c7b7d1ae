package trace

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"tracedash/models"
)

// queryTimeout bounds every store read. The external store gives no latency
// guarantee, so a slow query surfaces as query-failed instead of a stuck
// loading state.
const queryTimeout = 10 * time.Second

// Store reads recorded location traces. Both fetch operations are pure
// reads: they request only the fields the dashboard renders and return
// points in created_at ascending order as a query contract, never re-sorted
// here.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// FetchByUser returns the trace for one user, ordered by timestamp
// ascending. An empty result is a valid empty slice, not an error.
func (s *Store) FetchByUser(ctx context.Context, userID string) ([]models.LocationPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT latitude, longitude, created_at, speed
		FROM location_point
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trace for user: %w", err)
	}
	defer rows.Close()

	var points []models.LocationPoint
	for rows.Next() {
		p := models.LocationPoint{UserID: userID}
		if err := rows.Scan(&p.Latitude, &p.Longitude, &p.CreatedAt, &p.Speed); err != nil {
			return nil, fmt.Errorf("failed to scan location point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace rows: %w", err)
	}

	return normalize(points), nil
}

// FetchByFilter returns all points matching the supplied demographic
// criteria, ANDed, ordered by timestamp ascending. Omitted criteria are
// unconstrained. Callers are expected to skip the query entirely when no
// criterion is set; a zero FilterCriteria here matches everything.
func (s *Store) FetchByFilter(ctx context.Context, c models.FilterCriteria) ([]models.LocationPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT latitude, longitude, created_at, speed, user_id, age_range, gender, commute_mode
		FROM location_point
		WHERE 1=1`
	var args []interface{}
	for _, crit := range []struct {
		column string
		value  string
	}{
		{"age_range", c.AgeRange},
		{"gender", c.Gender},
		{"commute_mode", c.CommuteMode},
	} {
		if crit.value != "" {
			args = append(args, crit.value)
			query += " AND " + crit.column + " = $" + strconv.Itoa(len(args))
		}
	}
	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trace by filter: %w", err)
	}
	defer rows.Close()

	var points []models.LocationPoint
	for rows.Next() {
		var p models.LocationPoint
		var ageRange, gender, commuteMode sql.NullString
		if err := rows.Scan(&p.Latitude, &p.Longitude, &p.CreatedAt, &p.Speed,
			&p.UserID, &ageRange, &gender, &commuteMode); err != nil {
			return nil, fmt.Errorf("failed to scan location point: %w", err)
		}
		p.AgeRange = ageRange.String
		p.Gender = gender.String
		p.CommuteMode = commuteMode.String
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace rows: %w", err)
	}

	return normalize(points), nil
}

// DisplayName resolves the user-facing name for a user, falling back to a
// deterministic truncation of the ID when no profile name exists. Lookup
// failures also fall back; the name is cosmetic and must not fail a trace.
func (s *Store) DisplayName(ctx context.Context, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var username sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT username FROM profile WHERE user_id = $1
	`, userID).Scan(&username)
	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to look up profile", "user_id", userID, "error", err)
	}
	if username.Valid && username.String != "" {
		return username.String
	}

	return FallbackName(userID)
}

// ListUsers returns the user directory: distinct user IDs with display
// labels for the selection dropdown.
func (s *Store) ListUsers(ctx context.Context) ([]models.UserOption, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT l.user_id, COALESCE(p.username, '')
		FROM location_point l
		LEFT JOIN profile p ON p.user_id = l.user_id
		ORDER BY l.user_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query user directory: %w", err)
	}
	defer rows.Close()

	var options []models.UserOption
	for rows.Next() {
		var userID, username string
		if err := rows.Scan(&userID, &username); err != nil {
			return nil, fmt.Errorf("failed to scan user directory row: %w", err)
		}
		label := username
		if label == "" {
			label = FallbackName(userID)
		}
		options = append(options, models.UserOption{Value: userID, Label: label})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user directory rows: %w", err)
	}

	return options, nil
}

// FallbackName is the display name used when a user has no profile entry:
// the first 8 characters of the ID plus an ellipsis.
func FallbackName(userID string) string {
	truncated := userID
	if len(truncated) > 8 {
		truncated = truncated[:8]
	}
	return "User " + truncated + "..."
}

// normalize rejects malformed points before they can reach the renderer.
// The stored data should never contain out-of-range coordinates, so a drop
// is logged rather than failing the whole trace.
func normalize(points []models.LocationPoint) []models.LocationPoint {
	valid := points[:0]
	for _, p := range points {
		if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
			slog.Warn("dropping point with out-of-range coordinates",
				"user_id", p.UserID,
				"latitude", p.Latitude,
				"longitude", p.Longitude,
			)
			continue
		}
		valid = append(valid, p)
	}
	return valid
}
