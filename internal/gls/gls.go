// Package gls resolves the identity of the calling goroutine.
//
// The runtime does not expose goroutine ids on purpose, but the header line
// emitted by runtime.Stack for the current goroutine carries one. Parsing it
// is the only portable way to key strictly per-goroutine state, and the id is
// used here as an opaque map key only, never for scheduling decisions.
package gls

import (
	"bytes"
	"runtime"
	"strconv"
)

// ID returns the id of the calling goroutine.
//
// The id is unique among live goroutines and is never reused while the
// goroutine is running. Cost is one bounded runtime.Stack call; callers that
// care should resolve it once per operation, not per byte.
func ID() uint64 {
	// Header format: "goroutine 18 [running]:\n..."
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	frame := bytes.TrimPrefix(buf[:n], []byte("goroutine "))

	end := bytes.IndexByte(frame, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(frame[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
