package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// NewUserCmd группирует команды профиля.
func NewUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Профиль пользователя",
	}
	cmd.AddCommand(newUserGetCmd(app))
	cmd.AddCommand(newUserCreateCmd(app))
	cmd.AddCommand(newUserUpdateCmd(app))
	return cmd
}

// user get [id]: без id — текущий пользователь.
func newUserGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get [user_id]",
		Short: "Показать профиль",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override int64
			if len(args) == 1 {
				id, err := parseIDArg(args[0], "user_id")
				if err != nil {
					return err
				}
				override = id
			}
			id, err := app.CurrentUser(override)
			if err != nil {
				return err
			}

			u, err := app.Client().GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, u)
			}
			printUser(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

// user create: пароль не передаётся флагом (чтобы не утекать в history),
// а читается скрытым вводом или из STDIN (--password-stdin).
//
// Пример:
//
//	aquamate user create --name taro --bio "水分補給を頑張ります！" --use
func newUserCreateCmd(app *App) *cobra.Command {
	var (
		name, bio, x, photoURL string
		passwordFromStdin      bool
		use                    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Зарегистрировать пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			req := sharedModels.CreateUserRequest{Name: name, Password: pw}
			if cmd.Flags().Changed("bio") {
				req.Bio = &bio
			}
			if cmd.Flags().Changed("x") {
				req.X = &x
			}
			if cmd.Flags().Changed("photo-url") {
				req.PhotoURL = &photoURL
			}

			u, err := app.Client().CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}

			if use {
				app.Profile.UserID = u.ID
				if err := SaveProfile(app.ProfilePath, app.Profile); err != nil {
					return err
				}
			}

			if app.JSON {
				return app.printJSON(cmd, u)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (user_id=%d)\n", u.Name, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&bio, "bio", "", "bio")
	cmd.Flags().StringVar(&x, "x", "", "X (Twitter) account")
	cmd.Flags().StringVar(&photoURL, "photo-url", "", "avatar URL")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.Flags().BoolVar(&use, "use", false, "make the new user current")
	cmd.MarkFlagRequired("name")

	return cmd
}

// user update: отправляются только явно указанные флаги.
func newUserUpdateCmd(app *App) *cobra.Command {
	var (
		userID                 int64
		name, bio, x, photoURL string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Изменить профиль",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.CurrentUser(userID)
			if err != nil {
				return err
			}

			var req sharedModels.UpdateUserRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("bio") {
				req.Bio = &bio
			}
			if cmd.Flags().Changed("x") {
				req.X = &x
			}
			if cmd.Flags().Changed("photo-url") {
				req.PhotoURL = &photoURL
			}

			u, err := app.Client().UpdateUser(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, u)
			}
			printUser(cmd.OutOrStdout(), u)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id (default: current)")
	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&bio, "bio", "", "bio")
	cmd.Flags().StringVar(&x, "x", "", "X (Twitter) account")
	cmd.Flags().StringVar(&photoURL, "photo-url", "", "avatar URL")

	return cmd
}
