package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCmd проверяет, что сервер и его база доступны.
func NewHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Проверить сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Client().Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.ServerURL, resp.Status)
			return nil
		},
	}
}
