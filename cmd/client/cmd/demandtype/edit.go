package demandtype

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/ui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Start a new demand type",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.DemandTypeList().OnAdd(ctx); err != nil {
			return err
		}

		ui.Success("pending edit discarded, run `utilibill demand-type form --new`")
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Start editing a demand type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid demand type id %q", args[0])
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

		for _, d := range view.Items() {
			if d.ID == id {
				if err := view.OnEdit(ctx, d); err != nil {
					return err
				}
				ui.Success("editing demand type #%d, run `utilibill demand-type form --edit`", id)
				return nil
			}
		}
		return fmt.Errorf("demand type #%d not found", id)
	},
}

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a demand type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid demand type id %q", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Authenticate(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		confirm := ui.Confirm
		if deleteYes {
			confirm = func(string) bool { return true }
		}

		if err := app.DemandTypeList().OnDelete(ctx, id, confirm); err != nil {
			return ui.WrapAuthError(err)
		}

		ui.Success("demand type #%d deleted", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
