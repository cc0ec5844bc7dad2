package errors

import (
	"errors"
	"strings"
	"testing"
)

type stringerPayload struct{ code int }

func (p stringerPayload) String() string { return "fault code 7" }

func TestNewFault_MessageRecovery(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{"plain text", "called frame with no stack", "called frame with no stack"},
		{"error value", errors.New("lookup failed"), "lookup failed"},
		{"stringer", stringerPayload{code: 7}, "fault code 7"},
		{"opaque value", 42, "operation faulted: 42"},
		{"opaque struct", struct{ X int }{X: 1}, "operation faulted: {1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFault(tt.payload)
			if f.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", f.Error(), tt.want)
			}
		})
	}
}

func TestFault_CapturesStack(t *testing.T) {
	f := NewFault("anything")
	if len(f.Stack) == 0 {
		t.Fatal("no stack captured")
	}
	if !strings.Contains(f.String(), "anything") {
		t.Errorf("String() = %q, missing message", f.String())
	}
}

func TestFault_Unwrap(t *testing.T) {
	cause := errors.New("inner")

	if got := NewFault(cause).Unwrap(); !errors.Is(got, cause) {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if got := NewFault("text payload").Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil for non-error payload", got)
	}
}

func TestRecover(t *testing.T) {
	risky := func() (err error) {
		defer Recover(&err)
		panic("midway failure")
	}

	err := risky()
	if err == nil {
		t.Fatal("panic was not converted to an error")
	}

	var f *Fault
	if !errors.As(err, &f) {
		t.Fatalf("error is %T, want *Fault", err)
	}
	if f.Payload != "midway failure" {
		t.Errorf("Payload = %v, want original panic value", f.Payload)
	}
}

func TestRecover_NoPanic(t *testing.T) {
	clean := func() (err error) {
		defer Recover(&err)
		return nil
	}

	if err := clean(); err != nil {
		t.Errorf("err = %v, want nil when nothing panicked", err)
	}
}
