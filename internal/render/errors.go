package render

import "errors"

// ErrRenderFailed is returned when an internal invariant is violated while
// building or serializing a Document, e.g. an unknown layout reaching the
// renderer. It indicates a schema or contract breach that upstream
// validation should have prevented, so it is surfaced to the caller rather
// than absorbed.
var ErrRenderFailed = errors.New("failed to render document")
