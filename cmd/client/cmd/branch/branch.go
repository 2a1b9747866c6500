package branch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"utilibill/cmd/client/cmd/types"
	"utilibill/cmd/client/cmd/ui"
	"utilibill/internal/app/client"
	"utilibill/internal/domain/branch"
)

var BranchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Manage branches",
}

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List branches",
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

		items, err := app.Branches().List(ctx)
		if err != nil {
			return ui.WrapAuthError(err)
		}

		if listFormat == "json" {
			return ui.PrintJSON(items)
		}

		rows := make([][]string, 0, len(items))
		for _, b := range items {
			rows = append(rows, []string{
				strconv.FormatInt(b.ID, 10),
				b.Name,
				b.Address,
				b.Phone,
			})
		}
		ui.Table([]string{"ID", "NAME", "ADDRESS", "PHONE"}, rows)
		return nil
	},
}

var (
	createName    string
	createAddress string
	createPhone   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a branch",
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

		b := branch.Branch{Name: createName, Address: createAddress, Phone: createPhone}
		if err := b.Validate(); err != nil {
			ui.Fail("%v", err)
			return err
		}

		id, err := app.Branches().Create(ctx, b)
		if err != nil {
			return ui.WrapAuthError(err)
		}

		ui.Success("branch #%d created", id)
		return nil
	},
}

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a branch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid branch id %q", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Authenticate(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		if !deleteYes && !ui.Confirm(fmt.Sprintf("delete branch #%d?", id)) {
			return nil
		}

		if err := app.Branches().Delete(ctx, id); err != nil {
			return ui.WrapAuthError(err)
		}

		ui.Success("branch #%d deleted", id)
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
	createCmd.Flags().StringVar(&createName, "name", "", "branch name")
	createCmd.Flags().StringVar(&createAddress, "address", "", "branch address")
	createCmd.Flags().StringVar(&createPhone, "phone", "", "branch phone")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	BranchCmd.AddCommand(listCmd)
	BranchCmd.AddCommand(createCmd)
	BranchCmd.AddCommand(deleteCmd)
}
