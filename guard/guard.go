package guard

import (
	"go.uber.org/zap"

	"github.com/wippyai/ffi-bridge/errors"
)

// Do invokes op under fault interception.
//
// When op returns normally, its result and error pass through unchanged.
// When op panics, the panic is absorbed and returned as *errors.Fault
// together with the zero T; it never propagates past Do.
func Do[T any](op func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = absorb(r)
		}
	}()
	return op()
}

// Protect is the error-only form of Do for operations without a result.
func Protect(op func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = absorb(r)
		}
	}()
	return op()
}

func absorb(payload any) *errors.Fault {
	fault := errors.NewFault(payload)
	Logger().Debug("absorbed fault at call boundary",
		zap.String("message", fault.Error()),
		zap.Any("payload", payload))
	return fault
}
