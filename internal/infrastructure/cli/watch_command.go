package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/skypaper/internal/app"
	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/infrastructure/scheduler"
)

func newWatchCommand(container *app.Container) *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rotate the wallpaper periodically",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// An unusable sink makes every future cycle pointless, so it is
			// the one fatal startup condition.
			if !container.Sink.Available() {
				return fmt.Errorf("sink %q is not usable on this system: %w",
					container.Sink.Name(), domain.ErrSinkUnavailable)
			}

			interval := every
			if interval <= 0 {
				cfg, err := container.ConfigLoader.Load(ctx)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				interval = cfg.WatchInterval()
			}

			container.Logger.Info("watch started", map[string]interface{}{
				"interval": interval.String(),
				"sink":     container.Sink.Name(),
			})
			err := scheduler.Run(ctx, interval, container.Logger, func(ctx context.Context) error {
				_, err := container.CycleService.Run(domain.CycleRequest{Context: ctx})
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&every, "every", 0, "Cycle interval (default from config, 6h)")
	return cmd
}
