package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
)

// JSON escreve uma resposta de sucesso com o corpo serializado. Um data nil
// escreve apenas o status (usado no 204 do delete).
func JSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error traduz um erro das camadas internas para o status e corpo do
// contrato da API. Erros de validação carregam a lista de detalhes; erros
// 500 são logados com a causa raiz e devolvidos com corpo genérico.
func Error(w http.ResponseWriter, log logger.Logger, err error) {
	status, message := apperror.MapToHTTPStatus(err)

	body := domain.ErrorResponse{Error: message}
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		body.Details = validationErr.Details
	}

	if status >= http.StatusInternalServerError {
		log.Error("Erro interno ao atender requisição.", err)
	}

	JSON(w, status, body)
}

// InvalidBody é o erro padrão para payloads JSON que nem chegam ao schema.
func InvalidBody() error {
	return apperror.NewSchemaError([]string{"body: invalid JSON"})
}

// ParseID extrai o parâmetro numérico do path. Um valor não numérico se
// comporta como uma busca que não encontra nada: not found, não erro de
// parse, com a mensagem da entidade dona da rota.
func ParseID(r *http.Request, param, notFoundMsg string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, apperror.NewNotFoundError(notFoundMsg)
	}
	return id, nil
}
