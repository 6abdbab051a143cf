package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/skypaper/internal/app"
	"github.com/doeshing/skypaper/internal/domain"
)

func newRunCommand(container *app.Container) *cobra.Command {
	var (
		keywords []string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run [query]",
		Short: "Run one wallpaper cycle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			req := domain.CycleRequest{
				Context:  ctx,
				Keywords: keywords,
			}
			if len(args) > 0 {
				req.Query = args[0]
			}
			result, err := container.CycleService.Run(req)
			if err != nil {
				return fmt.Errorf("cycle %s failed while %s: %w", result.ID, result.Stage, err)
			}
			renderResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&keywords, "keyword", "k", nil, "Override search keywords (repeatable)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Overall cycle timeout")
	return cmd
}

func renderResult(cmd *cobra.Command, result domain.CycleResult) {
	out := cmd.OutOrStdout()
	if result.NoMatch {
		fmt.Fprintln(out, "No catalog match for the query; wallpaper unchanged.")
		return
	}
	title := result.Item.Title
	if title == "" {
		title = result.Item.ID
	}
	fmt.Fprintf(out, "Applied %q (%s)\n", title, result.Item.ID)
	if result.File != nil {
		fmt.Fprintf(out, "  %s (%s)\n", result.File.Path, humanize.Bytes(uint64(result.File.Size)))
	}
	if desc := strings.TrimSpace(result.Item.Description); desc != "" {
		if len(desc) > 160 {
			desc = desc[:160] + "..."
		}
		fmt.Fprintf(out, "  %s\n", desc)
	}
}
