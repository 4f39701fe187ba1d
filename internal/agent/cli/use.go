package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUseCmd создаёт команду выбора текущего пользователя.
//
// Пользователь проверяется запросом к серверу и сохраняется в профиль,
// после чего остальные команды работают от его имени.
//
// Пример использования:
//
//	aquamate use 1
func NewUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <user_id>",
		Short: "Выбрать текущего пользователя",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "user_id")
			if err != nil {
				return err
			}

			u, err := app.Client().GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}

			app.Profile.UserID = u.ID
			if err := SaveProfile(app.ProfilePath, app.Profile); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "now acting as %s (user_id=%d)\n", u.Name, u.ID)
			return nil
		},
	}
}
