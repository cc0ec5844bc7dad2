// Package ffibridge carries error information across a C-style calling
// convention without letting internal failures escape into foreign code.
//
// A C-style signature can signal failure only through a sentinel return
// value, commonly -1 or a null pointer. This library supplies the channel
// for the descriptive part: a per-goroutine last-error slot, a retrieval
// protocol that serializes the pending error into a caller-owned buffer,
// and a call wrapper that converts a panic into an ordinary error before it
// can cross the boundary.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	ffi-bridge/          Root package with the store/retrieve boundary surface
//	├── slot/            Per-goroutine single-value pending-error storage
//	├── guard/           Panic interception around wrapped calls
//	├── errors/          Structured error types and the Fault payload
//	├── capi/            C boundary exports for c-shared / c-archive builds
//	└── wasmhost/        The retrieval contract applied to wazero guest memory
//
// # Quick Start
//
// Application code reports failures and returns a sentinel; the caller
// drains the message:
//
//	result, err := guard.Do(riskyDecode)
//	if err != nil {
//	    ffibridge.Store(err)
//	    return -1 // sentinel across the boundary
//	}
//
//	// caller side, after observing the sentinel
//	buf := make([]byte, 256)
//	switch n := ffibridge.WriteMessage(buf); {
//	case n > 0:
//	    fmt.Println(string(buf[:n]))
//	case n == 0:
//	    // nothing was pending
//	default:
//	    // nil buffer, or buffer too small: retry with a larger one
//	}
//
// # Retrieval Contract
//
// WriteMessage reproduces the integer-coded convention used by C libraries
// (libgit2 popularized it):
//
//	> 0   message bytes written; the rest of the buffer is zero-filled
//	  0   no error was pending; buffer untouched
//	 -1   nil buffer, or buffer too small to hold message + terminator
//
// A buffer-too-small failure does not consume the error: it stays pending
// and a retry with a larger buffer succeeds.
//
// # Thread Affinity
//
// The concurrency unit is the goroutine. Each goroutine has an independent
// slot, so no error stored on one goroutine is ever visible to another, by
// construction. The failing call and the message retrieval must therefore
// happen on the same goroutine. Foreign-boundary integrations that pair
// the two across separate native calls should pin with
// runtime.LockOSThread; see package capi.
//
// # Faults
//
// guard.Do absorbs panics raised by the wrapped operation and converts
// them to *errors.Fault. State mutated before the fault point may be left
// inconsistent; operations wrapped by guard should be safe to re-invoke.
package ffibridge
