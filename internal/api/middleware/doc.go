// Package middleware holds the HTTP middleware shared by every route:
// request tracing, CORS and browser security headers.
package middleware
