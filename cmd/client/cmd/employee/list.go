package employee

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
	Short: "List employees",
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

		view := app.EmployeeList()
		if err := view.Load(ctx); err != nil {
			return ui.WrapAuthError(err)
		}

		if listFormat == "json" {
			return ui.PrintJSON(view.Items())
		}

		rows := make([][]string, 0, len(view.Items()))
		for _, e := range view.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(e.ID, 10),
				e.Name,
				e.Email,
				e.Branch.DisplayName(),
				e.Type.DisplayName(),
			})
		}
		ui.Table([]string{"ID", "NAME", "EMAIL", "BRANCH", "ROLE"}, rows)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")
}
