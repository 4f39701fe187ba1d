package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-aquamate/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-aquamate/internal/agent/config"
)

// newApp собирает App для вызова конструкторов команд напрямую, без root.
func newApp(t *testing.T, serverURL string, userID int64) *cli.App {
	t.Helper()
	return &cli.App{
		ServerURL:   serverURL,
		ProfilePath: filepath.Join(t.TempDir(), "profile.json"),
		Profile:     &config.Profile{Server: serverURL, UserID: userID},
	}
}

// run выполняет команду с аргументами и возвращает вывод.
func run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
