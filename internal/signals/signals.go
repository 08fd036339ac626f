// Package signals turns SIGINT into the global interrupt flag of §5.
// It runs independently of bubbletea's own key handling in
// internal/dashboard: a dashboard that has already quit (or was never
// started, e.g. non-interactive runs) must still let Ctrl-C wind the
// driver down gracefully.
package signals

import (
	"context"
	"os"
	"os/signal"
)

// WithInterrupt returns a context canceled on the first SIGINT and a
// stop function the caller must invoke (typically via defer) to
// release the underlying signal.Notify registration.
func WithInterrupt(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-done:
		}
	}()

	stop := func() {
		close(done)
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
