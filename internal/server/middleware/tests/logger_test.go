package tests

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"
)

// Статус по умолчанию и размер
func TestResponseWriter_Write_DefaultStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &middleware.ResponseWriter{ResponseWriter: rr}

	body := []byte("hello")
	n, err := w.Write(body)

	require.NoError(t, err)
	require.Equal(t, len(body), n)
	require.Equal(t, http.StatusOK, w.Status)
	require.Equal(t, len(body), w.Size)
}

// вспомогательная функция
func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// проверка корректного прохода статуса и тела через мидлу
func TestLoggerMiddleware(t *testing.T) {
	mw := middleware.LoggerMiddleware(logger.NewNop())

	handler := mw(testHandler(http.StatusTeapot, "tea"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	require.Equal(t, "tea", rr.Body.String())
}

// в строке лога есть request_id из RequestID middleware
func TestLoggerMiddleware_WritesRequestID(t *testing.T) {
	dir := t.TempDir()
	log := logger.New(logger.Options{Dir: dir, File: "http.log", Format: "json"})

	handler := middleware.RequestID(middleware.LoggerMiddleware(log)(testHandler(http.StatusCreated, "ok")))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/water_records/1", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "http.log"))
	require.NoError(t, err)

	line := string(data)
	require.True(t, strings.Contains(line, `"request_id":"req-123"`), line)
	require.True(t, strings.Contains(line, `"status":201`), line)
	require.True(t, strings.Contains(line, `"uri":"/api/v1/water_records/1"`), line)
}
