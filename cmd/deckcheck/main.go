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

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprint(os.Stderr, exitMessage(err))
		os.Exit(1)
	}
}

// exitMessage is what main prints before exiting non-zero. Errors already
// shown in a run summary and interrupts print nothing.
func exitMessage(err error) string {
	var done *errAlreadyReported
	if err == nil || errors.As(err, &done) || errors.Is(err, context.Canceled) {
		return ""
	}
	return fmt.Sprintf("error: %v\n", err)
}
