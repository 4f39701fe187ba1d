package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-aquamate/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-aquamate/internal/agent/config"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

func TestNewUseCmd_SavesUserToProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sharedModels.User{ID: 2, Name: "test_user2"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newApp(t, srv.URL, 0)

	out, err := run(cli.NewUseCmd(app), "2")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "now acting as test_user2 (user_id=2)") {
		t.Fatalf("unexpected output: %q", out)
	}

	loaded, err := config.Load(app.ProfilePath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UserID != 2 {
		t.Fatalf("expected saved user_id=2, got %d", loaded.UserID)
	}
}

func TestNewUseCmd_UnknownUser_DoesNotSave(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/99", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, sharedModels.ErrorResponse{Error: "not found", Message: "user not found"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	saved := false
	orig := cli.SaveProfile
	cli.SaveProfile = func(string, *config.Profile) error {
		saved = true
		return nil
	}
	t.Cleanup(func() { cli.SaveProfile = orig })

	_, err := run(cli.NewUseCmd(newApp(t, srv.URL, 0)), "99")
	if err == nil || !strings.Contains(err.Error(), "user not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
	if saved {
		t.Fatalf("profile must not be saved for unknown user")
	}
}

func TestNewUseCmd_BadID(t *testing.T) {
	_, err := run(cli.NewUseCmd(newApp(t, "http://unused", 0)), "abc")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}
