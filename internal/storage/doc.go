// Package storage persists serialized presentation packages by ID.
//
// The Storage interface is deliberately narrow: a presentation is an opaque
// byte blob keyed by its UUID, saved once and read back for download. Three
// backends implement it: local files, an in-memory map, and PostgreSQL. The
// backend is selected from configuration at startup via New; there is no
// runtime registration.
package storage
