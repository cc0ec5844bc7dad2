package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which side of the boundary the error occurred on
type Phase string

const (
	PhaseStore    Phase = "store"    // recording a pending error
	PhaseRetrieve Phase = "retrieve" // draining the pending error into a caller buffer
	PhaseGuard    Phase = "guard"    // fault interception around a wrapped call
	PhaseExport   Phase = "export"   // foreign-facing entry points
)

// Kind categorizes the error
type Kind string

const (
	KindNilBuffer      Kind = "nil_buffer"
	KindBufferTooSmall Kind = "buffer_too_small"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindFault          Kind = "fault"
	KindInvalidInput   Kind = "invalid_input"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NilBuffer creates an error for a nil or invalid caller buffer
func NilBuffer() *Error {
	return &Error{
		Phase:  PhaseRetrieve,
		Kind:   KindNilBuffer,
		Detail: "caller buffer is nil",
	}
}

// BufferTooSmall creates an error for an undersized caller buffer
func BufferTooSmall(need, capacity int) *Error {
	return &Error{
		Phase:  PhaseRetrieve,
		Kind:   KindBufferTooSmall,
		Detail: fmt.Sprintf("message needs %d bytes, buffer holds %d", need, capacity),
	}
}

// OutOfBounds creates an error for a write that would escape a memory region
func OutOfBounds(ptr, size, limit uint64) *Error {
	return &Error{
		Phase:  PhaseRetrieve,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("region [%d, %d) exceeds memory of %d bytes", ptr, ptr+size, limit),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Faulted wraps an absorbed fault with boundary context
func Faulted(cause error) *Error {
	return &Error{
		Phase: PhaseGuard,
		Kind:  KindFault,
		Cause: cause,
	}
}
