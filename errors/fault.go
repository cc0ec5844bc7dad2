package errors

import (
	"fmt"
	"runtime/debug"
)

// Fault is an error recovered from an uncontrolled internal fault (a panic).
// It preserves the original payload and the stack captured at the recovery
// point so the failure stays diagnosable after it has been flattened into an
// ordinary error value.
type Fault struct {
	// Payload is the original value passed to panic()
	Payload any

	// Stack is the stack trace captured when the fault was absorbed
	Stack []byte

	message string
}

// NewFault converts a recovered panic payload into a Fault.
//
// The payload's type is not statically known; a small closed set of shapes
// is recognized in priority order: plain text, an error value, a
// fmt.Stringer. Anything else falls back to a generic description.
func NewFault(payload any) *Fault {
	var msg string
	switch v := payload.(type) {
	case string:
		msg = v
	case error:
		msg = v.Error()
	case fmt.Stringer:
		msg = v.String()
	default:
		msg = fmt.Sprintf("operation faulted: %v", v)
	}

	return &Fault{
		Payload: payload,
		Stack:   debug.Stack(),
		message: msg,
	}
}

// Error implements the error interface
func (f *Fault) Error() string {
	return f.message
}

// Unwrap returns the payload when it is itself an error, nil otherwise
func (f *Fault) Unwrap() error {
	if err, ok := f.Payload.(error); ok {
		return err
	}
	return nil
}

// String renders the fault together with its captured stack
func (f *Fault) String() string {
	return fmt.Sprintf("%s\n%s", f.message, f.Stack)
}

// Recover converts an in-flight panic into a Fault assigned through err.
// It must be called directly from a defer statement:
//
//	func risky() (err error) {
//		defer errors.Recover(&err)
//		// ...
//	}
//
// When no panic is in flight, err is left untouched.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = NewFault(r)
	}
}
