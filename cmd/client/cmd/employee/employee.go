package employee

import (
	"fmt"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/types"
	"utilibill/internal/app/client"
)

var EmployeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employees",
}

func init() {
	EmployeeCmd.AddCommand(listCmd)
	EmployeeCmd.AddCommand(addCmd)
	EmployeeCmd.AddCommand(editCmd)
	EmployeeCmd.AddCommand(formCmd)
	EmployeeCmd.AddCommand(deleteCmd)
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
