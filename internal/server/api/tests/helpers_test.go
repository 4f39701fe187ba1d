package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/api"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/config"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-aquamate/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

type repoMocks struct {
	users      *svcmocks.MockUsersRepo
	records    *svcmocks.MockWaterRecordsRepo
	stamps     *svcmocks.MockStampsRepo
	userStamps *svcmocks.MockUserStampsRepo
	health     *svcmocks.MockHealthRepo
}

// NewTestHandler создаёт Handler с настоящими сервисами поверх моков репозиториев
func NewTestHandler(t *testing.T) (*api.Handler, repoMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := repoMocks{
		users:      svcmocks.NewMockUsersRepo(ctrl),
		records:    svcmocks.NewMockWaterRecordsRepo(ctrl),
		stamps:     svcmocks.NewMockStampsRepo(ctrl),
		userStamps: svcmocks.NewMockUserStampsRepo(ctrl),
		health:     svcmocks.NewMockHealthRepo(ctrl),
	}

	cfg := &config.Config{
		Password: config.PasswordConfig{
			Argon2: config.Argon2Config{Time: 1, MemoryKiB: 8 * 1024, Threads: 1, KeyLen: 16, SaltLen: 8},
		},
	}
	config.ApplyDefaults(cfg)

	svc := service.NewServices(service.Repositories{
		Users:        m.users,
		WaterRecords: m.records,
		Stamps:       m.stamps,
		UserStamps:   m.userStamps,
		Health:       m.health,
	}, cfg)

	log := logger.NewNop()
	return api.NewHandler(svc, log), m
}

// newRequest собирает запрос с параметрами chi, как если бы его разрулил роутер
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(api.ContentType, api.JsonContentType)
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v, body=%q", err, rec.Body.String())
	}
	return resp
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("expected %d, got %d, body=%q", want, rec.Code, rec.Body.String())
	}
}
