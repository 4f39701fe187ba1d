package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// NewDrinkCmd создаёт команду записи выпитой воды.
//
// --amount, --lat и --lon обязательны, время проставляет сервер.
//
// Пример использования:
//
//	aquamate drink --amount 300 --lat 35.6762 --lon 139.6503 --type お茶 --comment "после обеда"
func NewDrinkCmd(app *App) *cobra.Command {
	var (
		userID             int64
		amount             int
		lat, lon           float64
		waterType, comment string
	)

	cmd := &cobra.Command{
		Use:   "drink",
		Short: "Записать выпитую воду",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.CurrentUser(userID)
			if err != nil {
				return err
			}

			req := sharedModels.CreateWaterRecordRequest{
				WaterAmount: &amount,
				Lat:         &lat,
				Lon:         &lon,
			}
			if cmd.Flags().Changed("type") {
				req.WaterType = &waterType
			}
			if cmd.Flags().Changed("comment") {
				req.Comment = &comment
			}

			rec, err := app.Client().CreateWaterRecord(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, rec)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %d ml (water_id=%d)\n", rec.WaterAmount, rec.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id (default: current)")
	cmd.Flags().IntVar(&amount, "amount", 0, "amount in ml")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().StringVar(&waterType, "type", "", "drink type (water, tea, ...)")
	cmd.Flags().StringVar(&comment, "comment", "", "comment")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")

	return cmd
}

// NewRecordsCmd показывает записи о воде.
//
//	aquamate records            # все, новые первыми
//	aquamate records --today    # за сегодня
//	aquamate records --latest   # последняя
func NewRecordsCmd(app *App) *cobra.Command {
	var (
		userID        int64
		today, latest bool
	)

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Записи о воде",
		RunE: func(cmd *cobra.Command, args []string) error {
			if today && latest {
				return errors.New("--today and --latest are mutually exclusive")
			}
			id, err := app.CurrentUser(userID)
			if err != nil {
				return err
			}
			c := app.Client()

			if latest {
				rec, err := c.LatestWaterRecord(cmd.Context(), id)
				if err != nil {
					return err
				}
				if app.JSON {
					return app.printJSON(cmd, rec)
				}
				printRecord(cmd.OutOrStdout(), rec)
				return nil
			}

			var recs []sharedModels.WaterRecord
			if today {
				recs, err = c.TodayWaterRecords(cmd.Context(), id)
			} else {
				recs, err = c.ListWaterRecords(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, recs)
			}
			printRecords(cmd.OutOrStdout(), recs)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id (default: current)")
	cmd.Flags().BoolVar(&today, "today", false, "only today's records")
	cmd.Flags().BoolVar(&latest, "latest", false, "only the latest record")

	return cmd
}

// NewRecordCmd группирует команды над одной записью.
func NewRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Операции над записью о воде",
	}
	cmd.AddCommand(newRecordUpdateCmd(app))
	return cmd
}

// record update <water_id>: отправляются только явно указанные флаги.
// --owner переносит запись другому (существующему) пользователю.
func newRecordUpdateCmd(app *App) *cobra.Command {
	var (
		amount             int
		lat, lon           float64
		waterType, comment string
		date               string
		owner              int64
	)

	cmd := &cobra.Command{
		Use:   "update <water_id>",
		Short: "Изменить запись о воде",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			waterID, err := parseIDArg(args[0], "water_id")
			if err != nil {
				return err
			}

			var req sharedModels.UpdateWaterRecordRequest
			f := cmd.Flags()
			if f.Changed("amount") {
				req.WaterAmount = &amount
			}
			if f.Changed("lat") {
				req.Lat = &lat
			}
			if f.Changed("lon") {
				req.Lon = &lon
			}
			if f.Changed("type") {
				req.WaterType = &waterType
			}
			if f.Changed("comment") {
				req.Comment = &comment
			}
			if f.Changed("owner") {
				req.UserID = &owner
			}
			if f.Changed("date") {
				t, err := time.Parse(time.RFC3339, date)
				if err != nil {
					return fmt.Errorf("--date must be RFC3339 (2024-05-01T09:30:00+09:00): %w", err)
				}
				req.WaterDate = &t
			}

			resp, err := app.Client().UpdateWaterRecord(cmd.Context(), waterID, req)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			printRecord(cmd.OutOrStdout(), resp.WaterRecord)
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "amount in ml")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().StringVar(&waterType, "type", "", "drink type")
	cmd.Flags().StringVar(&comment, "comment", "", "comment")
	cmd.Flags().StringVar(&date, "date", "", "record time, RFC3339")
	cmd.Flags().Int64Var(&owner, "owner", 0, "move record to another user")

	return cmd
}

// NewNearbyCmd показывает, кто пил воду рядом с последней записью пользователя.
func NewNearbyCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Кто пьёт воду рядом",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.CurrentUser(userID)
			if err != nil {
				return err
			}

			list, err := app.Client().Nearby(cmd.Context(), id)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.printJSON(cmd, list)
			}
			printNearby(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id (default: current)")
	return cmd
}
