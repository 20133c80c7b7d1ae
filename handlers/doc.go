/*
Package handlers contains HTTP request handlers for the dashboard API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: login, logout, session check
  - UserHandler: user directory for the selector dropdown
  - ViewHandler: view lifecycle and selection changes

# Auth Flow

The whole dashboard sits behind one shared operator password:

	POST /api/auth         → Login (sets the auth_token cookie)
	DELETE /api/auth       → Logout (clears it, always 200)
	GET /api/auth/check    → Check (200 authenticated / 401 not)

# View Flow

The dashboard page creates a view, then drives it with selections and polls
its snapshot:

	POST /api/views                 → Create (returns view_id)
	POST /api/views/{id}/mode       → SetMode (clears selection, no query)
	POST /api/views/{id}/selection  → ApplySelection (dispatches the query)
	POST /api/views/{id}/ready      → MarkReady (map surface finished loading)
	GET  /api/views/{id}            → Snapshot (state + map document)

Selection queries resolve asynchronously; the snapshot's state moves
loading → ready | no-data | error, and a superseded selection's result is
never visible.
*/
package handlers
