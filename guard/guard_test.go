package guard

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/ffi-bridge/errors"
)

func TestDo_PassThroughOk(t *testing.T) {
	got, err := Do(func() (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if got != 42 {
		t.Fatalf("result = %d, want 42", got)
	}
}

func TestDo_PassThroughErr(t *testing.T) {
	want := stderrors.New("ordinary failure")

	got, err := Do(func() (string, error) {
		return "partial", want
	})
	if !stderrors.Is(err, want) {
		t.Fatalf("err = %v, want the operation's own error unchanged", err)
	}
	if got != "partial" {
		t.Fatalf("result = %q, want whatever the operation returned", got)
	}
}

func TestDo_AbsorbsPanic(t *testing.T) {
	got, err := Do(func() (int, error) {
		panic("nil entry in frame table")
	})

	if err == nil {
		t.Fatal("panic escaped conversion")
	}
	if !strings.Contains(err.Error(), "nil entry in frame table") {
		t.Errorf("err = %q, want the panic payload text", err)
	}
	if got != 0 {
		t.Errorf("result = %d, want zero value after a fault", got)
	}

	var f *errors.Fault
	if !stderrors.As(err, &f) {
		t.Fatalf("err is %T, want *errors.Fault", err)
	}
	if f.Payload != "nil entry in frame table" {
		t.Errorf("Payload = %v, want original panic value", f.Payload)
	}
	if len(f.Stack) == 0 {
		t.Error("fault carries no stack")
	}
}

func TestDo_AbsorbsErrorPayload(t *testing.T) {
	cause := stderrors.New("corrupt index")

	_, err := Do(func() (struct{}, error) {
		panic(cause)
	})

	if !stderrors.Is(err, cause) {
		t.Fatalf("err = %v, want chain to reach the panicked error", err)
	}
}

func TestDo_RuntimeFault(t *testing.T) {
	var items []int

	_, err := Do(func() (int, error) {
		return items[3], nil // out-of-bounds access
	})

	if err == nil {
		t.Fatal("runtime panic escaped conversion")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("err = %q, want the runtime error text", err)
	}
}

func TestDo_CallStackContinuable(t *testing.T) {
	// After an absorbed fault the enclosing flow must continue normally.
	for i := 0; i < 3; i++ {
		_, err := Do(func() (int, error) {
			panic("repeated fault")
		})
		if err == nil {
			t.Fatalf("iteration %d: fault not converted", i)
		}
	}

	got, err := Do(func() (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Fatalf("Do after faults = (%d, %v), want (7, nil)", got, err)
	}
}

func TestProtect(t *testing.T) {
	if err := Protect(func() error { return nil }); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}

	want := stderrors.New("declined")
	if err := Protect(func() error { return want }); !stderrors.Is(err, want) {
		t.Fatalf("err = %v, want pass-through", err)
	}

	err := Protect(func() error {
		panic("mid-write abort")
	})
	if err == nil || !strings.Contains(err.Error(), "mid-write abort") {
		t.Fatalf("err = %v, want converted fault", err)
	}
}
