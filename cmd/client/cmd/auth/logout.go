package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/types"
	"utilibill/cmd/client/cmd/ui"
	"utilibill/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Logout(ctx); err != nil {
			return err
		}

		ui.Success("logged out")
		return nil
	},
}
