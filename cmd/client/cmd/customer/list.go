package customer

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Authenticate(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		view := app.CustomerList()
		if err := view.Load(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		if listFormat == "json" {
			return ui.PrintJSON(view.Items())
		}

		rows := make([][]string, 0, len(view.Items()))
		for _, c := range view.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(c.ID, 10),
				c.Name,
				c.MeterNo,
				c.Branch.DisplayName(),
				c.DemandType.DisplayName(),
				c.Phone,
			})
		}
		ui.Table([]string{"ID", "NAME", "METER", "BRANCH", "DEMAND TYPE", "PHONE"}, rows)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")
}
