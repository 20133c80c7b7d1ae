/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: password
  - SelectionRequest: mode, user_id or criteria
  - ModeRequest: mode

# Response Types

Types for JSON responses:

  - AuthResponse: success, message
  - CheckResponse: authenticated
  - CreateViewResponse: view_id
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - LocationPoint: one recorded geo sample (coordinates, timestamp, speed)
  - FilterCriteria: demographic filter set (ANDed, empty = unconstrained)
  - UserOption: user directory entry for the selector dropdown

# Constants

Selection modes:

	ModeUser   = "user"
	ModeFilter = "filter"

View states:

	StateNoSelection = "no-selection"
	StateLoading     = "loading"
	StateNoData      = "no-data"
	StateReady       = "ready"
	StateError       = "error"
*/
package models
