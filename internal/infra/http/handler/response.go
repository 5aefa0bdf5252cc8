package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/rs/zerolog/log"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors []string `json:"errors"`
}

// Helpers para resposta JSON
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Falha ao codificar resposta JSON")
	}
}

func respondErrors(w http.ResponseWriter, status int, messages ...string) {
	respondJSON(w, status, errorsResponse{Errors: messages})
}

// respondDomainError faz o mapeamento de Erros de Domínio -> HTTP Status Code
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondErrors(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondErrors(w, http.StatusUnauthorized, "Invalid login or password")
	case errors.Is(err, domain.ErrUnauthorized):
		respondErrors(w, http.StatusUnauthorized, "Authentication required")
	default:
		// Erro interno (banco caiu, bug, etc)
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Erro interno ao processar requisição")
		respondErrors(w, http.StatusInternalServerError, "Internal server error")
	}
}
