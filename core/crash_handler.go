package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/fatih/color"
)

var (
	restoreMu sync.Mutex
	restoreFn func()
)

// SetCrashRestore registers the terminal restore hook run before a crash report
// Pass nil to clear, the screen owner registers its Fini after Init
func SetCrashRestore(fn func()) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// restoreTerminal runs the registered hook once
func restoreTerminal() {
	restoreMu.Lock()
	fn := restoreFn
	restoreFn = nil
	restoreMu.Unlock()

	if fn != nil {
		fn()
	}
}

// HandleCrash restores the terminal and exits 1 after printing the panic and its stack
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreTerminal()

	// Terminal may still be in raw mode if no restore hook was registered
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "\r\nneural-field crashed: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "%s\r\n", debug.Stack())
	_ = os.Stderr.Sync()

	os.Exit(1)
}

// Go starts fn on a goroutine whose panics go through HandleCrash
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
