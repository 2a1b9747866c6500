package demandtype

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List demand types",
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

		view := app.DemandTypeList()
		if err := view.Load(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		if listFormat == "json" {
			return ui.PrintJSON(view.Items())
		}

		rows := make([][]string, 0, len(view.Items()))
		for _, d := range view.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(d.ID, 10),
				d.Name,
				fmt.Sprintf("%.2f", d.MinCharge),
				fmt.Sprintf("%.2f", d.Rate),
			})
		}
		ui.Table([]string{"ID", "NAME", "MIN CHARGE", "RATE"}, rows)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")
}
