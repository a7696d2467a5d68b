package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"gescon/internal/domain"
	"gescon/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote. Um tipo próprio
// não exportável por valor evita colisão com chaves string de outros pacotes.
type ContextKey int

const (
	// UserClaimsKey é a chave usada para armazenar as claims do usuário no contexto.
	UserClaimsKey ContextKey = iota
	// RequestIDKey é a chave do id de requisição gerado pelo RequestID middleware.
	RequestIDKey
)

// UserClaims representa os dados do usuário extraídos do token JWT,
// anexados ao contexto da requisição para os handlers seguintes.
type UserClaims struct {
	UserID int64
	Role   domain.UserRole
}

// TokenValidator define o contrato de validação necessário para o middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// writeUnauthorized devolve 401 com o corpo JSON do contrato da API.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Error: message})
}

// Auth cria o middleware que valida o bearer token e anexa as claims
// (UserID e Role) ao contexto da requisição. Ele nunca emite tokens.
func Auth(tokenSvc TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "Token is missing")
				return
			}

			// Formato esperado: "Bearer <token>". O split em whitespace
			// descarta o esquema e fica com o token.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 {
				writeUnauthorized(w, "Invalid token")
				return
			}
			tokenString := parts[1]

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				writeUnauthorized(w, "Invalid token")
				return
			}

			userClaims := UserClaims{
				UserID: claims.UserID,
				Role:   domain.UserRole(claims.Role),
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserClaimsFromContext extrai as claims anexadas pelo Auth middleware.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}
