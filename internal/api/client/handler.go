package client

import (
	"context"
	"encoding/json"
	"net/http"

	"gescon/internal/api/respond"
	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
	"gescon/internal/pkg/middleware"
	"gescon/internal/pkg/validation"
)

// ClientService define o contrato que o Handler espera da camada de Serviço.
type ClientService interface {
	Register(ctx context.Context, data domain.ClientCreateRequest) (domain.Client, error)
	GetByID(ctx context.Context, id int64) (domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id int64, data domain.ClientUpdateRequest) (domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// Handler agrupa os métodos HTTP da entidade Client.
type Handler struct {
	Service   ClientService
	Validator *validation.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando as dependências.
func NewHandler(svc ClientService, v *validation.Validator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// updateResponse é o corpo de sucesso da atualização: a entidade mais a
// mensagem de confirmação.
type updateResponse struct {
	domain.Client
	Message string `json:"message"`
}

// Register lida com POST /v1/clients.
// @Summary Registra um novo cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param client body domain.ClientCreateRequest true "Dados do cliente"
// @Success 201 {object} domain.Client
// @Failure 400 {object} domain.ErrorResponse "Schema inválido ou CNPJ/código duplicado"
// @Security BearerAuth
// @Router /v1/clients [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data domain.ClientCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	h.Logger.Debug("Registro de cliente recebido.", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"cnpj":       data.CNPJ,
	})

	client, err := h.Service.Register(ctx, data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, client)
}

// GetByID lida com GET /v1/clients/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	client, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, client)
}

// GetAll lida com GET /v1/clients.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, clients)
}

// Update lida com PATCH /v1/clients/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	var data domain.ClientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	if data.IsEmpty() {
		respond.Error(w, h.Logger, apperror.NewSchemaError([]string{"at least one field must be provided for update"}))
		return
	}

	client, err := h.Service.Update(r.Context(), id, data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{Client: client, Message: "Client updated successfully"})
}

// Delete lida com DELETE /v1/clients/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusNoContent, nil)
}

func parseID(r *http.Request) (int64, error) {
	return respond.ParseID(r, "id", "Client not found")
}
