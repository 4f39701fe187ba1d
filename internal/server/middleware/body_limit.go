package middleware

import "net/http"

// BodyLimit ограничивает размер тела запроса. При превышении json-декодер
// в хендлере получит ошибку и ответит 400. n <= 0 отключает лимит.
func BodyLimit(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
