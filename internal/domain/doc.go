// Package domain defines the core business entities and errors.
//
// All entities are validated value objects: they are checked at
// construction and never mutated afterwards. Validation failures wrap
// ErrValidation so callers can distinguish bad input from downstream
// failures.
package domain
