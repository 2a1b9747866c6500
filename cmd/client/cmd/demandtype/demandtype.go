package demandtype

import (
	"fmt"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/types"
	"utilibill/internal/app/client"
)

var DemandTypeCmd = &cobra.Command{
	Use:     "demand-type",
	Aliases: []string{"demandtype", "dt"},
	Short:   "Manage demand types (tariffs)",
}

func init() {
	DemandTypeCmd.AddCommand(listCmd)
	DemandTypeCmd.AddCommand(addCmd)
	DemandTypeCmd.AddCommand(editCmd)
	DemandTypeCmd.AddCommand(formCmd)
	DemandTypeCmd.AddCommand(deleteCmd)
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
