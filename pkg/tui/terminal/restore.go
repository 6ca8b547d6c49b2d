// ABOUTME: RestoreOnPanic recovers from panics, deactivates the device, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the display.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main, after the device
// is activated. On panic it deactivates the device so the shell gets its
// terminal back, prints the panic value and stack trace, then exits 1.
func RestoreOnPanic(d Device) {
	r := recover()
	if r == nil {
		return
	}

	d.Deactivate()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the device is active. Unlike RestoreOnPanic it does NOT
// call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(d Device) {
	r := recover()
	if r == nil {
		return
	}

	d.Deactivate()

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
