// Package render turns a validated slide sequence into a paginated deck
// document and serializes it as a PowerPoint (.pptx) package.
//
// Rendering is pure in-memory computation: Render builds an immutable
// Document value from slides, citations, theme, and aspect ratio, and
// Serialize writes that value as a deterministic OOXML zip. By the time
// rendering runs the content has already been schema-validated, so any
// inconsistency found here is a contract breach and fails the whole render;
// no partial document is ever exposed.
package render
