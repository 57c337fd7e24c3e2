package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu sync.Mutex
	resetFn func()
)

// SetCrashReset registers the function that restores the display before a crash report is printed
// The terminal shell registers its screen finalizer here so the core never imports a backend
func SetCrashReset(fn func()) {
	resetMu.Lock()
	resetFn = fn
	resetMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	fn := resetFn
	resetMu.Unlock()
	if fn != nil {
		fn()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
