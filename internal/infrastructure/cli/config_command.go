package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/skypaper/internal/app"
	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/infrastructure/config"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect skypaper configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container, false)
		},
	}

	var diff bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container, diff)
		},
	}
	showCmd.Flags().BoolVar(&diff, "diff", false, "Show only differences from the default configuration")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := container.ConfigLoader.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			raw, err := yaml.Marshal(config.Default())
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
				return err
			}
			if err := os.WriteFile(path, raw, domain.SecureFilePermissions); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(showCmd, pathCmd, initCmd)
	return configCmd
}

func showConfiguration(cmd *cobra.Command, container *app.Container, diffOnly bool) error {
	cfg, err := container.ConfigLoader.Load(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if diffOnly {
		diff := cmp.Diff(config.Default(), cfg)
		if diff == "" {
			fmt.Fprintln(out, "No differences from default configuration.")
			return nil
		}
		fmt.Fprintln(out, diff)
		return nil
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}
