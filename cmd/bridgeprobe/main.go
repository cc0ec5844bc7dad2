// Command bridgeprobe exercises the last-error bridge from the caller's
// point of view: it runs an operation that fails (or faults), stores the
// resulting error, then drains the message through the integer-coded
// retrieval contract with a buffer of the chosen capacity.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	ffibridge "github.com/wippyai/ffi-bridge"
	"github.com/wippyai/ffi-bridge/guard"
)

func main() {
	var (
		msg         = flag.String("msg", "record 57313: checksum mismatch", "Error message the operation reports")
		fault       = flag.String("fault", "", "Panic payload; when set the operation faults instead of failing normally")
		capacity    = flag.Int("cap", 256, "Retrieval buffer capacity in bytes")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*msg, *fault, *capacity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(msg, fault string, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got %d", capacity)
	}

	// The "application" side: a guarded operation that fails, stores its
	// error, and would return a sentinel across the boundary.
	_, err := guard.Do(func() (int, error) {
		if fault != "" {
			panic(fault)
		}
		return 0, errors.New(msg)
	})
	if err != nil {
		ffibridge.Store(err)
	}
	fmt.Println(titleStyle.Render("bridgeprobe"))
	fmt.Printf("operation: %s\n", errorStyle.Render(fmt.Sprintf("failed (%T)", err)))

	// The "caller" side: drain through the integer-coded contract, growing
	// the buffer on -1 to show that an undersized attempt preserves the
	// error.
	for {
		buf := make([]byte, capacity)
		n := ffibridge.WriteMessage(buf)

		switch {
		case n > 0:
			fmt.Printf("drain cap=%-4d -> %s\n", capacity, resultStyle.Render(fmt.Sprintf("%d bytes", n)))
			fmt.Printf("message: %s\n", resultStyle.Render(string(buf[:n])))
			return nil
		case n == ffibridge.WriteEmpty:
			fmt.Printf("drain cap=%-4d -> %s\n", capacity, helpStyle.Render("0 (nothing pending)"))
			return nil
		default:
			fmt.Printf("drain cap=%-4d -> %s\n", capacity,
				errorStyle.Render("-1 (too small, error preserved)"))
			if capacity == 0 {
				capacity = 1
			}
			capacity *= 2
		}
	}
}
