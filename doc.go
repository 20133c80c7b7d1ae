/*
Package main provides the entry point for the location trace dashboard.

The dashboard is a password-gated internal tool for viewing GPS location
traces on a map, either for a single user or aggregated across users
matching demographic filters.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_PASSWORD=... SESSION_HASH_KEY=... MAPBOX_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 4316 -t postgres -d "postgres://..."

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): Shared dashboard password
  - SESSION_HASH_KEY (-session-key): Secret for session cookie signing
  - MAPBOX_TOKEN (-mapbox-token): Mapbox access token for the map page

Optional settings:

  - PORT (-p): Server port (default: 4316)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DATABASE_URL (-d): Connection string or sqlite file path
  - ENV: "production" enables Secure cookies

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, users, views)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Session gating, logging, JSON helpers
  - models: Request/response types
  - session: Signed-cookie session gate
  - trace: Location trace queries
  - dashboard: Per-client view state and selection control
  - maprender: Map document construction
  - web: HTML pages
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
