package demandtype

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
	"utilibill/internal/app/client"
	"utilibill/internal/domain/demandtype"
	"utilibill/internal/editsession"
)

var (
	formNew    bool
	formEdit   bool
	formSubmit bool
	formCancel bool

	formName string
	formMin  float64
	formRate float64
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the demand type form",
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

		form := app.DemandTypeForm()

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
			id, err := form.Submit(ctx, func(d demandtype.DemandType) error {
				return d.Validate()
			})
			if err != nil {
				ui.Fail("%v", err)
				return err
			}
			ui.Success("demand type #%d saved", id)
			return nil
		}

		d := form.Record()
		fmt.Printf("Mode: %s\n\n", form.Mode())
		ui.Table([]string{"FIELD", "VALUE"}, [][]string{
			{"name", d.Name},
			{"min-charge", fmt.Sprintf("%.2f", d.MinCharge)},
			{"rate", fmt.Sprintf("%.2f", d.Rate)},
		})
		return form.Unmount(ctx)
	},
}

func applyFlags(ctx context.Context, cmd *cobra.Command, form *client.FormView[demandtype.DemandType]) error {
	return form.SetField(ctx, func(d *demandtype.DemandType) {
		if cmd.Flags().Changed("name") {
			d.Name = formName
		}
		if cmd.Flags().Changed("min-charge") {
			d.MinCharge = formMin
		}
		if cmd.Flags().Changed("rate") {
			d.Rate = formRate
		}
	})
}

func init() {
	formCmd.Flags().BoolVar(&formNew, "new", false, "start a blank demand type, discarding any pending edit")
	formCmd.Flags().BoolVar(&formEdit, "edit", false, "resume the pending edit session for a demand type")
	formCmd.Flags().BoolVar(&formSubmit, "submit", false, "validate and save the demand type")
	formCmd.Flags().BoolVar(&formCancel, "cancel", false, "abandon the pending edit session")
	formCmd.Flags().StringVar(&formName, "name", "", "demand type name")
	formCmd.Flags().Float64Var(&formMin, "min-charge", 0, "minimum charge")
	formCmd.Flags().Float64Var(&formRate, "rate", 0, "per-unit rate")
}
