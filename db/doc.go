/*
Package db provides database schema creation.

# Tables

  - location_point: recorded geo samples with coordinates, speed (km/h),
    demographic attributes, and a created_at timestamp
  - profile: user_id → username display names

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle
	}

CreateSchema is idempotent (IF NOT EXISTS) and portable between sqlite and
postgres; timestamps are always written explicitly by the application.
*/
package db
