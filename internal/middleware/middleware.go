// Package middleware holds the echo middleware chain: request ids, request
// scoped logging, New Relic tracing, optional Clerk auth, per-IP rate
// limiting and the global error handler.
package middleware
