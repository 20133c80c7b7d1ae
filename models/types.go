package models

import "time"

// Selection mode constants
const (
	ModeUser   = "user"
	ModeFilter = "filter"
)

// View state constants
const (
	StateNoSelection = "no-selection"
	StateLoading     = "loading"
	StateNoData      = "no-data"
	StateReady       = "ready"
	StateError       = "error"
)

// LocationPoint is one recorded sample of a trace. Latitude is always in
// [-90, 90] and longitude in [-180, 180] once a point has passed
// normalization in the trace package.
type LocationPoint struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	Speed       float64   `json:"speed"` // km/h
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	AgeRange    string    `json:"age_range,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	CommuteMode string    `json:"commute_mode,omitempty"`
}

// FilterCriteria selects traces by demographic attributes. Supplied fields
// are ANDed with exact match; empty fields are unconstrained.
type FilterCriteria struct {
	AgeRange    string `json:"age_range,omitempty"`
	Gender      string `json:"gender,omitempty"`
	CommuteMode string `json:"commute_mode,omitempty"`
}

// Empty reports whether no criterion is set. An empty filter selection is
// defined to issue no query at all.
func (c FilterCriteria) Empty() bool {
	return c.AgeRange == "" && c.Gender == "" && c.CommuteMode == ""
}

// UserOption is one entry of the user directory dropdown.
type UserOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type SelectionRequest struct {
	Mode     string          `json:"mode"`
	UserID   string          `json:"user_id,omitempty"`
	Criteria *FilterCriteria `json:"criteria,omitempty"`
}

type ModeRequest struct {
	Mode string `json:"mode"`
}

// Response types

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CheckResponse struct {
	Authenticated bool `json:"authenticated"`
}

type CreateViewResponse struct {
	ViewID string `json:"view_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
