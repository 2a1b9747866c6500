package customer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
	"utilibill/internal/app/client"
	"utilibill/internal/domain/customer"
	"utilibill/internal/domain/refs"
	"utilibill/internal/editsession"
)

var (
	formNew    bool
	formEdit   bool
	formSubmit bool
	formCancel bool

	formName       string
	formAddress    string
	formPhone      string
	formMeterNo    string
	formBranch     int64
	formDemandType int64
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the customer form",
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

		form, customerRefs := app.CustomerForm()

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
			id, err := form.Submit(ctx, func(c customer.Customer) error {
				return c.Validate()
			})
			if err != nil {
				ui.Fail("%v", err)
				return err
			}
			ui.Success("customer #%d saved", id)
			return nil
		}

		printForm(form, customerRefs)
		return form.Unmount(ctx)
	},
}

func applyFlags(ctx context.Context, cmd *cobra.Command, form *client.FormView[customer.Customer]) error {
	return form.SetField(ctx, func(c *customer.Customer) {
		if cmd.Flags().Changed("name") {
			c.Name = formName
		}
		if cmd.Flags().Changed("address") {
			c.Address = formAddress
		}
		if cmd.Flags().Changed("phone") {
			c.Phone = formPhone
		}
		if cmd.Flags().Changed("meter") {
			c.MeterNo = formMeterNo
		}
		if cmd.Flags().Changed("branch") {
			c.Branch = refs.ByID(formBranch)
		}
		if cmd.Flags().Changed("demand-type") {
			c.DemandType = refs.ByID(formDemandType)
		}
	})
}

func printForm(form *client.FormView[customer.Customer], customerRefs *client.CustomerRefs) {
	c := form.Record()

	fmt.Printf("Mode: %s\n\n", form.Mode())
	ui.Table([]string{"FIELD", "VALUE"}, [][]string{
		{"name", c.Name},
		{"address", c.Address},
		{"phone", c.Phone},
		{"meter", c.MeterNo},
		{"branch", c.Branch.DisplayName()},
		{"demand-type", c.DemandType.DisplayName()},
	})

	fmt.Println("\nBranches:")
	branchRows := make([][]string, 0, len(customerRefs.Branches))
	for _, b := range customerRefs.Branches {
		branchRows = append(branchRows, []string{strconv.FormatInt(b.ID, 10), b.Name})
	}
	ui.Table([]string{"ID", "NAME"}, branchRows)

	fmt.Println("\nDemand types:")
	dtRows := make([][]string, 0, len(customerRefs.DemandTypes))
	for _, d := range customerRefs.DemandTypes {
		dtRows = append(dtRows, []string{strconv.FormatInt(d.ID, 10), d.Name, fmt.Sprintf("%.2f", d.Rate)})
	}
	ui.Table([]string{"ID", "NAME", "RATE"}, dtRows)
}

func init() {
	formCmd.Flags().BoolVar(&formNew, "new", false, "start a blank customer, discarding any pending edit")
	formCmd.Flags().BoolVar(&formEdit, "edit", false, "resume the pending edit session for a customer")
	formCmd.Flags().BoolVar(&formSubmit, "submit", false, "validate and save the customer")
	formCmd.Flags().BoolVar(&formCancel, "cancel", false, "abandon the pending edit session")
	formCmd.Flags().StringVar(&formName, "name", "", "customer name")
	formCmd.Flags().StringVar(&formAddress, "address", "", "customer address")
	formCmd.Flags().StringVar(&formPhone, "phone", "", "phone number")
	formCmd.Flags().StringVar(&formMeterNo, "meter", "", "meter number")
	formCmd.Flags().Int64Var(&formBranch, "branch", 0, "branch id")
	formCmd.Flags().Int64Var(&formDemandType, "demand-type", 0, "demand type id")
}
