package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/rs/zerolog/log"
)

type principalKeyType string

const (
	principalKey principalKeyType = "principal"
	tokenKey     principalKeyType = "token"
)

// Authenticate exige "Authorization: Bearer <token>" com sessão válida.
// O id da conta autenticada vai para o contexto (AccountIDFromContext).
func Authenticate(sessions gateway.SessionRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			accountID, err := sessions.Get(r.Context(), token)
			if errors.Is(err, domain.ErrSessionNotFound) {
				unauthorized(w)
				return
			}
			if err != nil {
				// Diferente da idempotência, aqui não dá para "deixar passar" (Fail Closed)
				log.Error().Err(err).Msg("Falha ao consultar sessão")
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, accountID)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountIDFromContext devolve o id autenticado (false fora de rota protegida).
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(principalKey).(int64)
	return id, ok
}

// TokenFromContext devolve o token usado na requisição (para logout).
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// WithAccountID é usado em testes de handler para simular um usuário logado.
func WithAccountID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, principalKey, id)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeErrors(w, http.StatusUnauthorized, "Authentication required")
}

func writeErrors(w http.ResponseWriter, status int, messages ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string][]string{"errors": messages}); err != nil {
		log.Error().Err(err).Msg("Falha ao codificar resposta JSON")
	}
}
