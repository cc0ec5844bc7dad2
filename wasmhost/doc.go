// Package wasmhost applies the last-error retrieval contract to the linear
// memory of a wazero guest.
//
// A wasm guest sits on the far side of the same kind of boundary as a C
// caller: host functions can only hand it plain integers, so a failing host
// call returns a sentinel and the guest drains the message into a buffer it
// owns inside its own memory.
//
// Instantiate registers a host module exporting
//
//	wippy:ffi-bridge/errors  last-error-message(ptr: u32, len: u32) -> s32
//
// with the identical return convention used everywhere else in this
// library: the message byte count on success, 0 when nothing is pending,
// -1 for an unusable or undersized buffer (error preserved for retry).
// The write never touches guest memory outside [ptr, ptr+len).
package wasmhost
