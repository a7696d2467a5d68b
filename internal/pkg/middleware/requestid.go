package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestID gera um identificador único por requisição, anexado ao contexto
// e ecoado no header X-Request-ID. Os handlers o incluem nos campos de log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extrai o id de requisição do contexto, se presente.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
