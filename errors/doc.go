// Package errors provides the structured error types used across the bridge.
//
// Errors are categorized by Phase (which side of the boundary failed) and
// Kind (error category). The Error type carries a human-readable detail and
// an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRetrieve, errors.KindBufferTooSmall).
//		Detail("message needs %d bytes, buffer holds %d", need, cap).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BufferTooSmall(need, cap)
//	err := errors.NilBuffer()
//
// Uncontrolled faults absorbed at a call boundary are represented by the
// Fault type, which preserves the original panic payload and the stack
// captured at the recovery point.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
