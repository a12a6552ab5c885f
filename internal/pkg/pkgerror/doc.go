// Package pkgerror implements the layered error model used across the
// application.
//
// An error can originate deep in a call chain (often inside a third-party
// dependency), accumulate message text and a classification as it passes
// upward through layers, and be inspected exactly once at the HTTP boundary
// to decide response and logging:
//   - Intermediate layers never log; they wrap (New/Wrap/AddContext) or pass
//     the error through unchanged.
//   - The layer that first understands a fault assigns its classification
//     via a type-scoped constructor (for example NotFound.Wrapf).
//   - The boundary maps the classification to a status code, enriches the
//     response with the context record, and logs only Unclassified errors.
//
// All values are immutable after construction, so they can cross goroutines
// without coordination.
package pkgerror
