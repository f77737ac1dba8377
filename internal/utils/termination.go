package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithTermination returns a context cancelled on SIGINT or SIGTERM.
func WithTermination(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
