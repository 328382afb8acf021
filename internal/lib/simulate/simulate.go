package simulate

import (
	"context"
	"time"
)

// Work blocks for d, standing in for a bounded unit of real I/O or compute.
// Pipeline stages call it so their ordering contract survives when the body
// is replaced with real work. Returns early if ctx is cancelled.
func Work(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
