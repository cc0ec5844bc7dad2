// Package capi exposes the last-error protocol to foreign callers.
//
// It is intended for libraries built with -buildmode=c-shared or c-archive:
// the export here becomes a plain C symbol, and application export shims
// pair it with StoreLastError:
//
//	//export mylib_parse
//	func mylib_parse(input *C.char) C.int {
//	    _, err := guard.Do(func() (int, error) { return parse(C.GoString(input)) })
//	    if err != nil {
//	        capi.StoreLastError(err)
//	        return -1
//	    }
//	    return 0
//	}
//
// The C caller drains the message after observing the sentinel:
//
//	char buf[256];
//	if (mylib_parse(input) < 0) {
//	    int n = bridge_last_error_message(buf, sizeof(buf));
//	    if (n > 0) fprintf(stderr, "parse: %s\n", buf);
//	}
//
// # Thread Affinity
//
// Pending errors are goroutine-affine. Current Go runtimes service repeated
// calls from the same foreign thread on that thread's dedicated runtime
// context, so the usual store-then-drain call pair from one C thread
// observes one slot. Go-side callers that make the failing call and the
// retrieval across goroutine hops must keep both on one goroutine;
// consumers of equivalent C APIs hold runtime.LockOSThread around the pair
// for the same reason.
package capi
