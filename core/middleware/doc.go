// Package middleware groups the Fiber middleware used by the HTTP server.
//
// Subpackages:
//   - rayid: assigns a correlation ID (ray ID) to every request.
//   - auth: API key protection for all API routes.
package middleware
