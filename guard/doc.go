// Package guard converts panics raised inside a wrapped call into ordinary
// error values.
//
// Foreign stack frames cannot participate in Go's unwinding protocol, so a
// panic that crosses a c-shared or c-archive boundary aborts the process.
// Wrapping the risky call keeps the fault on this side of the boundary:
//
//	result, err := guard.Do(func() (int, error) {
//	    return decodeFrame(input) // may panic on malformed input
//	})
//	if err != nil {
//	    ffibridge.Store(err)
//	    return -1
//	}
//
// A normal return, Ok or Err, passes through unchanged. A panic is absorbed
// and surfaces as *errors.Fault carrying the original payload and the stack
// captured at the recovery point.
//
// # Caveat
//
// Interception skips any unwinding-based cleanup below the fault point, so
// state the operation mutated before panicking may be left inconsistent.
// Wrapped operations should be safe to re-invoke after an interruption.
package guard
