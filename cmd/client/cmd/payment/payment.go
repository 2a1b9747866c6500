package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/types"
	"utilibill/cmd/client/cmd/ui"
	"utilibill/internal/app/client"
	"utilibill/internal/domain/payment"
	"utilibill/internal/domain/refs"
)

var PaymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Manage payments",
}

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
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

		items, err := app.Payments().List(ctx)
		if err != nil {
			return ui.WrapAuthError(err)
		}

		if listFormat == "json" {
			return ui.PrintJSON(items)
		}

		rows := make([][]string, 0, len(items))
		for _, p := range items {
			rows = append(rows, []string{
				strconv.FormatInt(p.ID, 10),
				p.Bill.DisplayName(),
				fmt.Sprintf("%.2f", p.Amount),
				p.PaidAt,
			})
		}
		ui.Table([]string{"ID", "BILL", "AMOUNT", "PAID AT"}, rows)
		return nil
	},
}

var (
	createBill   int64
	createAmount float64
	createPaidAt string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a payment against a bill",
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

		p := payment.Payment{
			Bill:   refs.ByID(createBill),
			Amount: createAmount,
			PaidAt: createPaidAt,
		}
		if err := p.Validate(); err != nil {
			ui.Fail("%v", err)
			return err
		}

		id, err := app.Payments().Create(ctx, p)
		if err != nil {
			return ui.WrapAuthError(err)
		}

		ui.Success("payment #%d recorded", id)
		return nil
	},
}

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid payment id %q", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Authenticate(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		if !deleteYes && !ui.Confirm(fmt.Sprintf("delete payment #%d?", id)) {
			return nil
		}

		if err := app.Payments().Delete(ctx, id); err != nil {
			return ui.WrapAuthError(err)
		}

		ui.Success("payment #%d deleted", id)
		return nil
	},
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")
	createCmd.Flags().Int64Var(&createBill, "bill", 0, "bill id")
	createCmd.Flags().Float64Var(&createAmount, "amount", 0, "payment amount")
	createCmd.Flags().StringVar(&createPaidAt, "date", "", "payment date (YYYY-MM-DD)")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	PaymentCmd.AddCommand(listCmd)
	PaymentCmd.AddCommand(createCmd)
	PaymentCmd.AddCommand(deleteCmd)
}
