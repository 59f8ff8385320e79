// Command imui-replay replays a scripted pointer session against a menu of
// buttons without opening a window, and reports which buttons were clicked.
//
// The session is described by a TOML file:
//
//	width = 640
//	height = 480
//	buttons = ["Play", "Options", "Quit"]
//
//	[[steps]]
//	action = "click"
//	x = 320
//	y = 240
//
// Every frame is drawn with the recording backend. Screenshot steps write the
// recorded draw commands of their frame to the --dump directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
