package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// Recoverer перехватывает панику в хендлере, пишет её в лог со стеком
// и отвечает 500 в обычном формате ошибки API.
func Recoverer(log *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				log.Error("panic recovered",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Any("panic", rvr),
					zap.ByteString("stack", debug.Stack()),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error:   serr.ErrInternal.Error(),
					Message: serr.ErrInternal.Error(),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
