package ffibridge

import (
	"github.com/wippyai/ffi-bridge/slot"
)

// WriteMessage drains the calling goroutine's last error into buf.
//
// On success it returns the number of message bytes written; one extra byte
// is reserved for a terminator, and every byte of buf past the message is
// zeroed so stale data from a previous call cannot leak through. It returns
// WriteEmpty when no error is pending (buf untouched) and WriteInvalid for a
// nil buffer (slot untouched) or a buffer smaller than message + terminator.
//
// An undersized buffer does not consume the error: it is restored and a
// retry with a larger buffer observes it again.
func WriteMessage(buf []byte) int {
	if buf == nil {
		return WriteInvalid
	}

	err := slot.Take()
	if err == nil {
		return WriteEmpty
	}

	msg := err.Error()
	if len(buf) < len(msg)+1 {
		slot.Store(err)
		return WriteInvalid
	}

	n := copy(buf, msg)
	clear(buf[n:])
	return n
}
