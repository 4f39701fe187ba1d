package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// NewStampsCmd группирует команды стампов.
//
//	aquamate stamps list
//	aquamate stamps inbox
//	aquamate stamps sent
//	aquamate stamps send --to 2 --stamp 1
//	aquamate stamps reply 5
func NewStampsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stamps",
		Short: "Стампы",
	}
	cmd.AddCommand(newStampsListCmd(app))
	cmd.AddCommand(newStampsInboxCmd(app))
	cmd.AddCommand(newStampsSentCmd(app))
	cmd.AddCommand(newStampsSendCmd(app))
	cmd.AddCommand(newStampsReplyCmd(app))
	return cmd
}

func newStampsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Справочник стампов",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Client().ListStamps(cmd.Context())
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, list)
			}
			printStamps(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func newStampsInboxCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Полученные стампы",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.CurrentUser(userID)
			if err != nil {
				return err
			}

			list, err := app.Client().ReceivedStamps(cmd.Context(), id)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, list)
			}
			printInbox(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id (default: current)")
	return cmd
}

func newStampsSentCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "sent",
		Short: "Отправленные стампы",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.CurrentUser(userID)
			if err != nil {
				return err
			}

			list, err := app.Client().SentStamps(cmd.Context(), id)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, list)
			}
			printSent(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id (default: current)")
	return cmd
}

func newStampsSendCmd(app *App) *cobra.Command {
	var from, to, stampID int64

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Отправить стамп",
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := app.CurrentUser(from)
			if err != nil {
				return err
			}

			us, err := app.Client().SendStamp(cmd.Context(), sharedModels.SendStampRequest{
				SenderID:   sender,
				ReceiverID: to,
				StampID:    stampID,
			})
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, us)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent stamp %d to user %d (user_stamp_id=%d)\n", us.StampID, us.ReceiverID, us.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "sender id (default: current)")
	cmd.Flags().Int64Var(&to, "to", 0, "receiver id")
	cmd.Flags().Int64Var(&stampID, "stamp", 0, "stamp id")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("stamp")

	return cmd
}

func newStampsReplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reply <user_stamp_id>",
		Short: "Ответить на полученный стамп",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "user_stamp_id")
			if err != nil {
				return err
			}

			us, err := app.Client().ReplyStamp(cmd.Context(), id)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, us)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "replied to stamp %d\n", us.ID)
			return nil
		},
	}
}
