// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// requestIDKey — ключ контекста, под которым хранится ID запроса.
const requestIDKey ctxKey = "request_id"

// RequestIDHeader — заголовок, в котором клиент может передать свой ID запроса.
const RequestIDHeader = "X-Request-ID"

// RequestID кладёт ID запроса в контекст и в заголовок ответа.
// Если клиент прислал X-Request-ID, используется он, иначе генерируется UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// GetRequestID достаёт ID запроса из контекста. Пустая строка, если его нет.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
