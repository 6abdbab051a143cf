// Package cli wires the cobra command surface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/skypaper/internal/app"
)

// Options holds CLI-level configuration. The config file path itself comes
// from SKYPAPER_CONFIG, resolved by the loader.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose})
	if err != nil {
		return nil, err
	}

	runCmd := newRunCommand(container)

	root := &cobra.Command{
		Use:   "skypaper [query]",
		Short: "skypaper - NASA image wallpaper rotator",
		Long:  "skypaper searches the NASA image library, downloads a picture and applies it as the desktop wallpaper.",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCmd.SetArgs(args)
			return runCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(runCmd)
	root.AddCommand(newWatchCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}
