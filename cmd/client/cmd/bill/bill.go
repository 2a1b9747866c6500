package bill

import (
	"fmt"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/types"
	"utilibill/internal/app/client"
)

var BillCmd = &cobra.Command{
	Use:   "bill",
	Short: "Manage bills",
}

func init() {
	BillCmd.AddCommand(listCmd)
	BillCmd.AddCommand(addCmd)
	BillCmd.AddCommand(editCmd)
	BillCmd.AddCommand(formCmd)
	BillCmd.AddCommand(deleteCmd)
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
