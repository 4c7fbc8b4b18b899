package server

import (
	"context"
	"os/signal"
	"syscall"
)

// WithSignal derives a context that is canceled on SIGINT or SIGTERM. Its
// cancellation is what drives the graceful shutdown path in app.Run; the
// returned stop function releases the signal registration.
func WithSignal(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
