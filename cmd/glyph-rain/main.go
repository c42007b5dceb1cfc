package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/vmath"
)

func main() {
	cfg, err := engine.ParseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// The terminal must be restored on every exit path, panics included;
	// otherwise the shell is left in raw alternate-screen mode
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "glyph-rain crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	rng := vmath.NewFastRand(vmath.TimeSeed())
	engine.NewLoop(screen, cfg, rng).Run()
}
