package employee

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
	"utilibill/internal/app/client"
	"utilibill/internal/domain/employee"
	"utilibill/internal/domain/refs"
	"utilibill/internal/editsession"
)

var (
	formNew    bool
	formEdit   bool
	formSubmit bool
	formCancel bool

	formName   string
	formEmail  string
	formPhone  string
	formBranch int64
	formType   int64
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the employee form",
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

		form, employeeRefs := app.EmployeeForm()

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
			id, err := form.Submit(ctx, func(e employee.Employee) error {
				return e.Validate()
			})
			if err != nil {
				ui.Fail("%v", err)
				return err
			}
			ui.Success("employee #%d saved", id)
			return nil
		}

		printForm(form, employeeRefs)
		return form.Unmount(ctx)
	},
}

func applyFlags(ctx context.Context, cmd *cobra.Command, form *client.FormView[employee.Employee]) error {
	return form.SetField(ctx, func(e *employee.Employee) {
		if cmd.Flags().Changed("name") {
			e.Name = formName
		}
		if cmd.Flags().Changed("email") {
			e.Email = formEmail
		}
		if cmd.Flags().Changed("phone") {
			e.Phone = formPhone
		}
		if cmd.Flags().Changed("branch") {
			e.Branch = refs.ByID(formBranch)
		}
		if cmd.Flags().Changed("type") {
			e.Type = refs.ByID(formType)
		}
	})
}

func printForm(form *client.FormView[employee.Employee], employeeRefs *client.EmployeeRefs) {
	e := form.Record()

	fmt.Printf("Mode: %s\n\n", form.Mode())
	ui.Table([]string{"FIELD", "VALUE"}, [][]string{
		{"name", e.Name},
		{"email", e.Email},
		{"phone", e.Phone},
		{"branch", e.Branch.DisplayName()},
		{"type", e.Type.DisplayName()},
	})

	fmt.Println("\nBranches:")
	branchRows := make([][]string, 0, len(employeeRefs.Branches))
	for _, b := range employeeRefs.Branches {
		branchRows = append(branchRows, []string{strconv.FormatInt(b.ID, 10), b.Name})
	}
	ui.Table([]string{"ID", "NAME"}, branchRows)

	fmt.Println("\nEmployee types:")
	typeRows := make([][]string, 0, len(employeeRefs.Types))
	for _, t := range employeeRefs.Types {
		typeRows = append(typeRows, []string{strconv.FormatInt(t.ID, 10), t.Name})
	}
	ui.Table([]string{"ID", "NAME"}, typeRows)
}

func init() {
	formCmd.Flags().BoolVar(&formNew, "new", false, "start a blank employee, discarding any pending edit")
	formCmd.Flags().BoolVar(&formEdit, "edit", false, "resume the pending edit session for a employee")
	formCmd.Flags().BoolVar(&formSubmit, "submit", false, "validate and save the employee")
	formCmd.Flags().BoolVar(&formCancel, "cancel", false, "abandon the pending edit session")
	formCmd.Flags().StringVar(&formName, "name", "", "employee name")
	formCmd.Flags().StringVar(&formEmail, "email", "", "email address")
	formCmd.Flags().StringVar(&formPhone, "phone", "", "phone number")
	formCmd.Flags().Int64Var(&formBranch, "branch", 0, "branch id")
	formCmd.Flags().Int64Var(&formType, "type", 0, "employee type id")
}
