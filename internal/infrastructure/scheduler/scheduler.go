// Package scheduler drives periodic wallpaper cycles. The loop runs each
// cycle inline, so invocations never overlap; a slow cycle simply delays the
// next tick.
package scheduler

import (
	"context"
	"time"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/ports"
)

// CycleFunc runs one wallpaper cycle.
type CycleFunc func(context.Context) error

// Run executes cycle immediately, then on every interval tick until the
// context is cancelled. Cycle failures are logged and the loop continues;
// only cancellation ends it.
func Run(ctx context.Context, interval time.Duration, log ports.Logger, cycle CycleFunc) error {
	if interval <= 0 {
		interval = domain.DefaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := cycle(ctx); err != nil {
			log.Error("cycle failed", err, map[string]interface{}{"next_in": interval.String()})
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
