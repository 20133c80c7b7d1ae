/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Session Guards

All paths except the login page require a valid auth cookie:

	middleware.RequireSession(gate, handler) // API: 401 JSON
	middleware.PageGate(gate, handler)       // pages: redirect to /login
	middleware.LoginRedirect(gate, handler)  // /login while authed: redirect to /

Both guards fail closed: the wrapped handler is never invoked, even
partially, without a valid session.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// handle
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in the request log and the login audit log.
*/
package middleware
