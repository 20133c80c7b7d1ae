/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4316)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminPassword: Shared operator password (required)
  - SessionHashKey: HMAC key for the signed auth cookie (required)
  - MapboxToken: Access token injected into the dashboard page
  - Production: true when ENV=production (marks the auth cookie Secure)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-mapbox-token    Mapbox access token
	-admin-password  Operator password
	-session-key     Session cookie HMAC key

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	MAPBOX_TOKEN     → -mapbox-token
	ADMIN_PASSWORD   → -admin-password
	SESSION_HASH_KEY → -session-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_PASSWORD must be provided
  - SESSION_HASH_KEY must be provided
*/
package cliparse
