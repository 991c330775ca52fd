package main

import (
	"os"

	"github.com/lixenwraith/neural-field/core"
)

func main() {
	// Panic Recovery: restore the terminal even if the field crashes on the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
