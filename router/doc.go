/*
Package router defines HTTP routes for the location trace dashboard.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Authentication (public):

	POST   /api/auth       - Login with admin password
	DELETE /api/auth       - Logout, clear session cookie
	GET    /api/auth/check - Report session validity

User directory (session required):

	GET /api/users - Selectable users with display labels

Dashboard views (session required):

	POST /api/views                - Create a view for a page load
	GET  /api/views/{id}           - Current view snapshot and map document
	POST /api/views/{id}/mode      - Switch selection mode, clearing state
	POST /api/views/{id}/selection - Apply a user or filter selection
	POST /api/views/{id}/ready     - Mark the map surface loaded

Pages:

	GET /login - Login form; redirects to / when already authenticated
	GET /      - Dashboard; redirects to /login without a session

# Handler Initialization

The router builds the session gate, trace store, and view registry from
the database connection and configuration, then injects them into the
handlers. All /api/users and /api/views routes are wrapped in
middleware.RequireSession; the pages use redirect gating instead so a
browser lands on the right page.
*/
package router
