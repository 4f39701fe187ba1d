// Package cli реализует командный интерфейс (CLI) клиента AquaMate.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локального профиля (сервер, таймаут, текущий пользователь);
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-aquamate/internal/agent/api"
	"github.com/IvanChernomyrdin/go-aquamate/internal/agent/config"
)

// ErrNoCurrentUser — пользователь не выбран ни флагом, ни в профиле.
var ErrNoCurrentUser = errors.New("no current user, run: aquamate use <user_id>")

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:5000").
	// Флаг --server перекрывает профиль.
	ServerURL string

	// ProfilePath — путь к файлу профиля.
	ProfilePath string
	// Profile — загруженный профиль. nil до PersistentPreRunE.
	Profile *config.Profile

	// JSON — печатать ответы сервера как есть, в JSON.
	JSON bool
}

// Client создаёт API-клиент с адресом и таймаутом из профиля.
func (a *App) Client() *api.Client {
	var opts []api.ClientOption
	if a.Profile != nil {
		opts = append(opts, api.WithTimeout(a.Profile.Timeout))
	}
	return NewAPIClient(a.ServerURL, opts...)
}

// CurrentUser возвращает override, если он задан, иначе пользователя из профиля.
func (a *App) CurrentUser(override int64) (int64, error) {
	if override > 0 {
		return override, nil
	}
	if a.Profile == nil || a.Profile.UserID <= 0 {
		return 0, ErrNoCurrentUser
	}
	return a.Profile.UserID, nil
}

// printJSON печатает v с отступами.
func (a *App) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE загружается профиль; --server перекрывает адрес из профиля.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "aquamate",
		Short: "AquaMate CLI — учёт выпитой воды и стампы друзьям",
		Long: `AquaMate CLI.

Команды:
  use       Выбрать текущего пользователя
  user      Профиль: get/create/update
  drink     Записать выпитую воду
  records   Записи о воде (все, за сегодня, последняя)
  record    Изменить запись
  nearby    Кто пьёт воду рядом
  stamps    Стампы: list/inbox/sent/send/reply
  health    Проверить сервер
  version   Версия и дата сборки

Примеры:
  aquamate user create --name taro --use
  aquamate drink --amount 300 --lat 35.6762 --lon 139.6503 --type 水
  aquamate records --today
  aquamate stamps send --to 2 --stamp 1
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.ProfilePath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.ProfilePath = p
			}

			profile, err := config.Load(app.ProfilePath)
			if err != nil {
				return err
			}
			app.Profile = profile

			if !cmd.Flags().Changed("server") {
				app.ServerURL = profile.Server
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", config.DefaultServer, "server base URL")
	cmd.PersistentFlags().StringVar(&app.ProfilePath, "profile", "", "profile path (default ~/.aquamate/profile.json)")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "print raw JSON")

	cmd.AddCommand(NewUseCmd(app))
	cmd.AddCommand(NewUserCmd(app))
	cmd.AddCommand(NewDrinkCmd(app))
	cmd.AddCommand(NewRecordsCmd(app))
	cmd.AddCommand(NewRecordCmd(app))
	cmd.AddCommand(NewNearbyCmd(app))
	cmd.AddCommand(NewStampsCmd(app))
	cmd.AddCommand(NewHealthCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseIDArg разбирает положительный id из аргумента команды.
func parseIDArg(s, name string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return id, nil
}
