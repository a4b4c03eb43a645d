package system

import (
	"context"
)

// RunWithContext executes a synchronous operation with context awareness.
// The operation itself is not interruptible; this wrapper gives callers a
// cancellation layer around it without the operation having to know.
//
// The function handles three scenarios:
//   - Normal completion: the operation's result is returned as-is.
//   - Context already cancelled: the operation never starts.
//   - Context cancelled mid-operation: the operation's context is
//     cancelled as a stop signal, then the wrapper waits for it to finish
//     so no goroutine or resource is left behind.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller cancelled before we started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets its own context so its lifecycle can be managed
	// independently of the parent.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads immediately.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it to finish to
		// guarantee its resources are released before returning.
		cancel()
		return <-done
	}
}
