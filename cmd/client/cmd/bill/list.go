package bill

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
	Short: "List bills",
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

		view := app.BillList()
		if err := view.Load(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		if listFormat == "json" {
			return ui.PrintJSON(view.Items())
		}

		rows := make([][]string, 0, len(view.Items()))
		for _, b := range view.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(b.ID, 10),
				b.Customer.DisplayName(),
				b.BillDate,
				fmt.Sprintf("%d/%d", b.Month, b.Year),
				fmt.Sprintf("%.1f → %.1f", b.PrevReading, b.CurrReading),
				fmt.Sprintf("%.2f", b.Amount()),
			})
		}
		ui.Table([]string{"ID", "CUSTOMER", "DATE", "PERIOD", "READINGS", "AMOUNT"}, rows)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")
}
