// Package api implements the HTTP layer: request models, handlers, and the
// mapping from service errors to HTTP status codes.
package api
