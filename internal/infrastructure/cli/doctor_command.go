package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/skypaper/internal/app"
	"github.com/doeshing/skypaper/internal/services"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose catalog, sink and storage health",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			out := cmd.OutOrStdout()
			failed := false
			for _, check := range report.Checks {
				fmt.Fprintf(out, "%-5s %-15s %s\n", marker(check.Status), check.Name, check.Details)
				if check.Status == services.HealthError {
					failed = true
				}
			}
			if err != nil {
				return err
			}
			if failed {
				return fmt.Errorf("one or more checks failed")
			}
			return nil
		},
	}
}

func marker(status services.HealthStatus) string {
	switch status {
	case services.HealthOK:
		return "[ok]"
	case services.HealthWarn:
		return "[warn]"
	default:
		return "[fail]"
	}
}
