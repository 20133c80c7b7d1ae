// Package web serves the HTML pages of the dashboard. Templates are
// embedded as string constants and parsed once at startup; the dashboard
// page receives the Mapbox access token from configuration.
package web
