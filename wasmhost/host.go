package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/ffi-bridge/slot"
)

// Namespace is the import module name guests use to reach the bridge.
const Namespace = "wippy:ffi-bridge/errors"

// WriteMessage drains the calling goroutine's last error into guest memory
// at [ptr, ptr+size).
//
// Return convention matches ffibridge.WriteMessage: message byte count on
// success (tail of the region zero-filled), 0 when nothing is pending
// (region untouched), -1 when mem is nil, the region escapes the memory, or
// the region is too small for message + terminator. An unusable region is
// rejected before the slot is touched; an undersized one restores the taken
// error, so -1 always leaves a pending error retrievable on retry.
//
// size is guest-controlled; the region is validated before any allocation
// sized by it.
func WriteMessage(mem api.Memory, ptr, size uint32) int32 {
	if mem == nil {
		return -1
	}
	if uint64(ptr)+uint64(size) > uint64(mem.Size()) {
		Logger().Debug("guest buffer escapes linear memory",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size),
			zap.Uint32("memory_size", mem.Size()))
		return -1
	}

	err := slot.Take()
	if err == nil {
		return 0
	}

	msg := err.Error()
	if uint64(size) < uint64(len(msg))+1 {
		slot.Store(err)
		return -1
	}

	// Zero-initialized, so the tail past the message is the zero fill.
	buf := make([]byte, size)
	copy(buf, msg)

	if !mem.Write(ptr, buf) {
		slot.Store(err)
		return -1
	}
	return int32(len(msg))
}

// Instantiate registers the bridge host module with rt so guests can import
// last-error-message. The returned module stays registered until closed or
// the runtime shuts down.
func Instantiate(ctx context.Context, rt wazero.Runtime) (api.Module, error) {
	return rt.NewHostModuleBuilder(Namespace).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, m api.Module, stack []uint64) {
			ptr := api.DecodeU32(stack[0])
			size := api.DecodeU32(stack[1])
			stack[0] = api.EncodeI32(WriteMessage(m.Memory(), ptr, size))
		}), []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, []api.ValueType{api.ValueTypeI32}).
		Export("last-error-message").
		Instantiate(ctx)
}
