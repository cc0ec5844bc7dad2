//go:build cgo

package capi

// Test files cannot use cgo, so these tests exercise messageInto, the
// pointer-level core the C export delegates to, against Go-allocated
// regions.

import (
	"errors"
	"testing"
	"unsafe"

	ffibridge "github.com/wippyai/ffi-bridge"
)

func region(capacity int) ([]byte, unsafe.Pointer) {
	buf := make([]byte, capacity)
	return buf, unsafe.Pointer(&buf[0])
}

func TestMessageInto_RoundTrip(t *testing.T) {
	defer ffibridge.Release()

	StoreLastError(errors.New("boom"))

	buf, ptr := region(10)
	n := messageInto(ptr, 10)

	if n != 4 {
		t.Fatalf("messageInto = %d, want 4", n)
	}
	if got := string(buf[:4]); got != "boom" {
		t.Errorf("region = %q, want %q prefix", got, "boom")
	}
	for i := 4; i < len(buf); i++ {
		if buf[i] != 0 {
			t.Errorf("region[%d] = %#x, want zero fill", i, buf[i])
		}
	}

	if n := messageInto(ptr, 10); n != 0 {
		t.Fatalf("second drain = %d, want 0", n)
	}
}

func TestMessageInto_NullPointer(t *testing.T) {
	defer ffibridge.Release()

	StoreLastError(errors.New("still pending"))

	if n := messageInto(nil, 64); n != -1 {
		t.Fatalf("messageInto(nil) = %d, want -1", n)
	}

	// The null-pointer failure must not have consumed the error.
	buf, ptr := region(64)
	n := messageInto(ptr, 64)
	if n <= 0 {
		t.Fatalf("drain after null-pointer call = %d, want the pending message", n)
	}
	if got := string(buf[:n]); got != "still pending" {
		t.Errorf("drained %q", got)
	}
}

func TestMessageInto_NegativeLength(t *testing.T) {
	defer ffibridge.Release()

	StoreLastError(errors.New("pending"))

	_, ptr := region(8)
	if n := messageInto(ptr, -1); n != -1 {
		t.Fatalf("messageInto with negative length = %d, want -1", n)
	}
	if got := ffibridge.Take(); got == nil {
		t.Fatal("negative-length call consumed the error")
	}
}

func TestMessageInto_UndersizedPreservesError(t *testing.T) {
	defer ffibridge.Release()

	msg := "message too long for the region"
	StoreLastError(errors.New(msg))

	_, small := region(len(msg)) // one byte short of message + terminator
	if n := messageInto(small, int32(len(msg))); n != -1 {
		t.Fatalf("undersized messageInto = %d, want -1", n)
	}

	buf, ptr := region(len(msg) + 1)
	n := messageInto(ptr, int32(len(msg)+1))
	if n != int32(len(msg)) {
		t.Fatalf("retry messageInto = %d, want %d (error was not restored)", n, len(msg))
	}
	if got := string(buf[:n]); got != msg {
		t.Errorf("retry drained %q", got)
	}
}

func TestClearLastError(t *testing.T) {
	StoreLastError(errors.New("stale"))
	ClearLastError()

	_, ptr := region(64)
	if n := messageInto(ptr, 64); n != 0 {
		t.Fatalf("messageInto after clear = %d, want 0", n)
	}
}
