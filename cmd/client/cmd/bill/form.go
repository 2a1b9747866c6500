package bill

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
	"utilibill/internal/app/client"
	"utilibill/internal/domain/bill"
	"utilibill/internal/domain/refs"
	"utilibill/internal/editsession"
)

var (
	formNew    bool
	formEdit   bool
	formSubmit bool
	formCancel bool

	formCustomer int64
	formDate     string
	formMonth    int
	formYear     int
	formPrev     float64
	formCurr     float64
	formMin      float64
	formRate     float64
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the bill form",
	Long: `Resumes a pending edit session when one is valid, otherwise starts
a blank bill. Field flags update the session; --submit sends the bill to the
server and --cancel abandons it.`,
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

		form, billRefs := app.BillForm()

		marker := ""
		switch {
		case formNew:
			marker = editsession.MarkerNew
		case formEdit:
			marker = editsession.MarkerEdit
		}
		if err := form.Mount(ctx, marker); err != nil {
			return ui.WrapAuthError(err)
		}

		if formCancel {
			if err := form.Cancel(ctx); err != nil {
				return err
			}
			ui.Success("edit session discarded")
			return nil
		}

		if err := applyFlags(ctx, cmd, form); err != nil {
			return err
		}

		if formSubmit {
			id, err := form.Submit(ctx, func(b bill.Bill) error {
				return b.Validate()
			})
			if err != nil {
				ui.Fail("%v", err)
				return err
			}
			ui.Success("bill #%d saved", id)
			return nil
		}

		printForm(form, billRefs)
		return form.Unmount(ctx)
	},
}

func applyFlags(ctx context.Context, cmd *cobra.Command, form *client.FormView[bill.Bill]) error {
	return form.SetField(ctx, func(b *bill.Bill) {
		if cmd.Flags().Changed("customer") {
			b.Customer = refs.ByID(formCustomer)
		}
		if cmd.Flags().Changed("date") {
			b.BillDate = bill.NormalizeDate(formDate)
		}
		if cmd.Flags().Changed("month") {
			b.Month = formMonth
		}
		if cmd.Flags().Changed("year") {
			b.Year = formYear
		}
		if cmd.Flags().Changed("prev-reading") {
			b.PrevReading = formPrev
		}
		if cmd.Flags().Changed("curr-reading") {
			b.CurrReading = formCurr
		}
		if cmd.Flags().Changed("min-charge") {
			b.MinCharge = formMin
		}
		if cmd.Flags().Changed("rate") {
			b.Rate = formRate
		}
	})
}

func printForm(form *client.FormView[bill.Bill], billRefs *client.BillRefs) {
	b := form.Record()

	fmt.Printf("Mode: %s\n\n", form.Mode())
	ui.Table([]string{"FIELD", "VALUE"}, [][]string{
		{"customer", b.Customer.DisplayName()},
		{"date", b.BillDate},
		{"month", strconv.Itoa(b.Month)},
		{"year", strconv.Itoa(b.Year)},
		{"prev-reading", fmt.Sprintf("%.2f", b.PrevReading)},
		{"curr-reading", fmt.Sprintf("%.2f", b.CurrReading)},
		{"min-charge", fmt.Sprintf("%.2f", b.MinCharge)},
		{"rate", fmt.Sprintf("%.2f", b.Rate)},
		{"amount", fmt.Sprintf("%.2f", b.Amount())},
	})

	fmt.Println("\nCustomers:")
	rows := make([][]string, 0, len(billRefs.Customers))
	for _, c := range billRefs.Customers {
		rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name, c.MeterNo})
	}
	ui.Table([]string{"ID", "NAME", "METER"}, rows)
}

func init() {
	formCmd.Flags().BoolVar(&formNew, "new", false, "start a blank bill, discarding any pending edit")
	formCmd.Flags().BoolVar(&formEdit, "edit", false, "resume the pending edit session for a bill")
	formCmd.Flags().BoolVar(&formSubmit, "submit", false, "validate and save the bill")
	formCmd.Flags().BoolVar(&formCancel, "cancel", false, "abandon the pending edit session")
	formCmd.Flags().Int64Var(&formCustomer, "customer", 0, "customer id")
	formCmd.Flags().StringVar(&formDate, "date", "", "bill date (YYYY-MM-DD)")
	formCmd.Flags().IntVar(&formMonth, "month", 0, "billing month (1-12)")
	formCmd.Flags().IntVar(&formYear, "year", 0, "billing year")
	formCmd.Flags().Float64Var(&formPrev, "prev-reading", 0, "previous meter reading")
	formCmd.Flags().Float64Var(&formCurr, "curr-reading", 0, "current meter reading")
	formCmd.Flags().Float64Var(&formMin, "min-charge", 0, "minimum charge")
	formCmd.Flags().Float64Var(&formRate, "rate", 0, "per-unit rate")
}
