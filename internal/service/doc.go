// Package service provides the application-level presentation service: it
// orchestrates content acquisition, rendering, serialization, and storage
// behind a single interface the API layer calls.
package service
