package capi

/*
#include <stddef.h>
*/
import "C"
import (
	"unsafe"

	ffibridge "github.com/wippyai/ffi-bridge"
)

// StoreLastError records err for the calling goroutine so a foreign caller
// can drain it through bridge_last_error_message. Export shims call this
// right before returning their sentinel value.
func StoreLastError(err error) {
	ffibridge.Store(err)
}

// ClearLastError drops any pending error for the calling goroutine.
func ClearLastError() {
	ffibridge.Store(nil)
}

//export bridge_last_error_message
func bridge_last_error_message(buffer *C.char, length C.int) C.int {
	return C.int(messageInto(unsafe.Pointer(buffer), int32(length)))
}

// messageInto applies the retrieval contract to a raw caller region. It
// carries everything the export adds over ffibridge.WriteMessage: rejecting
// a null pointer or negative length without touching the slot.
func messageInto(buffer unsafe.Pointer, length int32) int32 {
	if buffer == nil || length < 0 {
		return int32(ffibridge.WriteInvalid)
	}
	return int32(ffibridge.WriteMessage(unsafe.Slice((*byte)(buffer), int(length))))
}
