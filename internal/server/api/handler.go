// Package api реализует HTTP-слой сервера AquaMate.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - проверку Content-Type и разбор тела запроса.
//
// Маршруты регистрируются в internal/server/net/http.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// Вспомогательная функция вывода ошибки.
// В error уходит вид ошибки (not found, invalid input, ...), в message — подробности.
func WriteError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, models.ErrorResponse{
		Error:   serr.Kind(err).Error(),
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// fail выбирает статус по виду ошибки. Всё непредвиденное логируется и отдаётся как 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var status int
	switch serr.Kind(err) {
	case serr.ErrBadJSON, serr.ErrInvalidInput:
		status = http.StatusBadRequest
	case serr.ErrUnsupportedMediaType:
		status = http.StatusUnsupportedMediaType
	case serr.ErrNotFound:
		status = http.StatusNotFound
	default:
		h.Log.Logger.Sugar().Errorw(op+" failed",
			"error", err,
			"method", r.Method,
			"uri", r.RequestURI,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		// наружу только доменное сообщение, детали БД остаются в логе
		if !errors.As(err, new(*serr.DomainError)) {
			err = serr.ErrInternal
		}
		status = http.StatusInternalServerError
	}
	WriteError(w, status, err)
}

// isJSON: application/json или любой +json тип.
func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get(ContentType))
	if err != nil {
		return false
	}
	return mt == JsonContentType || strings.HasSuffix(mt, "+json")
}

// decodeJSON проверяет Content-Type (если requireJSON) и разбирает тело в dst.
func decodeJSON(r *http.Request, dst any, requireJSON bool) error {
	if requireJSON && !isJSON(r) {
		return serr.New(serr.ErrUnsupportedMediaType, "Content-Type must be application/json")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", serr.ErrBadJSON, err)
	}
	return nil
}

// pathID достаёт положительный id из параметра маршрута.
// Маршруты уже ограничены регуляркой [0-9]+, сюда доходят только 0 и переполнение.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		return 0, serr.ErrNotFound
	}
	return id, nil
}
