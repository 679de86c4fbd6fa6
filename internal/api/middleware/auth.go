package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-StorageService/internal/api/handlers"
)

const transportTokenHeader = "X-Transport-Token"

// Auth проверяет shared-токен транспорта чата. API не публичный:
// запросы приходят только от шлюза, который подписывает их токеном.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(transportTokenHeader) != token {
				handlers.RespondError(w, http.StatusUnauthorized, "неверный токен транспорта")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
