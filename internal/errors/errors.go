package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do Gescon.
// Ela permite que o código externo (Handler) acesse a Categoria e o status
// HTTP sugerido para o erro, sem inspecionar strings.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
// Details carrega a lista de violações campo a campo (formato do contrato
// da API: {"error": "Validation failed", "details": [...]}).
type ValidationError struct {
	Msg     string
	Details []string
}

func (e *ValidationError) Error() string    { return e.Msg }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação sem detalhes de campo.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewSchemaError cria o erro padrão de schema ("Validation failed") com a
// lista de violações por campo.
func NewSchemaError(details []string) AppError {
	return &ValidationError{Msg: "Validation failed", Details: details}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa a violação de uma regra de unicidade (chave
// natural duplicada: CNPJ, código, e-mail). O contrato da API devolve 400
// para falhas de criação, e não 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return e.Msg }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito de chave natural.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// UnauthorizedError representa falha de autenticação (credenciais ou token
// inválidos).
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return e.Msg }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou
// repositório. A mensagem interna nunca chega ao cliente; o Handler devolve
// um corpo genérico para erros 500.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return e.Msg }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return &InternalError{Msg: msg + " (DB)", Err: err}
}

// --- Helpers de Classificação ---

// IsNotFound informa se o erro (ou algum erro encadeado) é um NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// IsConflict informa se o erro (ou algum erro encadeado) é um ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return stderrors.As(err, &target)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e a mensagem
// que vai no corpo da resposta. Erros internos (e erros não tipados) viram
// um 500 com mensagem genérica, sem vazar texto do driver para o cliente.
func MapToHTTPStatus(err error) (int, string) {
	appErr, ok := err.(AppError)
	if !ok {
		return http.StatusInternalServerError, "Internal server error"
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		return status, "Internal server error"
	}
	return status, appErr.Error()
}
