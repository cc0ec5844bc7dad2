package ffibridge

import (
	"github.com/wippyai/ffi-bridge/slot"
)

// WriteMessage return codes. Positive values are a byte count, not a code.
const (
	// WriteEmpty reports that no error was pending.
	WriteEmpty = 0
	// WriteInvalid reports a nil buffer or a buffer too small for the
	// message. The two causes are deliberately not distinguishable; callers
	// that know the buffer was valid should retry with a larger one.
	WriteInvalid = -1
)

// Store records err as the calling goroutine's last error, replacing any
// previously pending one. Application code calls this right before returning
// a sentinel value across the boundary. Storing nil clears the slot.
func Store(err error) {
	slot.Store(err)
}

// Take removes and returns the calling goroutine's last error, nil when
// nothing is pending. Reading the error clears it.
func Take() error {
	return slot.Take()
}

// Release drops the calling goroutine's last-error state entirely. Long-lived
// worker goroutines should call it before retiring.
func Release() {
	slot.Release()
}
