package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/skypaper/internal/app"
	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/infrastructure/history"
)

const defaultHistoryListLimit = 20

func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect applied wallpaper history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)
	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent wallpapers, newest last",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := container.History.Load()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No wallpapers recorded yet.")
				return nil
			}
			if limit > 0 {
				entries = domain.TrimHistory(entries, limit)
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryListLimit, "Max entries to show")
	return cmd
}

func printEntries(out io.Writer, entries []domain.HistoryEntry) {
	for _, entry := range entries {
		size := "missing"
		if info, err := os.Stat(entry.Path); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		fmt.Fprintf(out, "%s  %-8s  %s\n", entry.AppliedAt.Format("2006-01-02 15:04"), size, entry.Path)
		fmt.Fprintf(out, "  applied %s\n", humanize.Time(entry.AppliedAt))
	}
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear wallpaper history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.History.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export history as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dest == "" {
				return fmt.Errorf("--output required")
			}
			if err := history.ExportJSONL(container.History, dest); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported history to %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dest, "output", "o", "", "Destination file")
	return cmd
}
