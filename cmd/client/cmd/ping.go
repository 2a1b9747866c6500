package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the server is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.HealthCheck(ctx); err != nil {
			ui.Fail("server unreachable: %v", err)
			return err
		}
		ui.Success("server is up")
		return nil
	},
}
