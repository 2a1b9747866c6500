package customer

import (
	"fmt"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/types"
	"utilibill/internal/app/client"
)

var CustomerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

func init() {
	CustomerCmd.AddCommand(listCmd)
	CustomerCmd.AddCommand(addCmd)
	CustomerCmd.AddCommand(editCmd)
	CustomerCmd.AddCommand(formCmd)
	CustomerCmd.AddCommand(deleteCmd)
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
