package contract

import (
	"context"
	"encoding/json"
	"net/http"

	"gescon/internal/api/respond"
	"gescon/internal/domain"
	"gescon/internal/pkg/logger"
	"gescon/internal/pkg/validation"
)

// ContractService define o contrato que o Handler espera da camada de Serviço.
type ContractService interface {
	Create(ctx context.Context, data domain.ContractCreateRequest) (domain.Contract, error)
	GetByID(ctx context.Context, id int64) (domain.Contract, error)
	GetAll(ctx context.Context) ([]domain.Contract, error)
	GetByClientID(ctx context.Context, clientID int64) ([]domain.Contract, error)
	Update(ctx context.Context, id int64, data domain.ContractUpdateRequest) (domain.Contract, error)
	Delete(ctx context.Context, id int64) error
}

// Handler agrupa os métodos HTTP da entidade Contract.
type Handler struct {
	Service   ContractService
	Validator *validation.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando as dependências.
func NewHandler(svc ContractService, v *validation.Validator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

type updateResponse struct {
	domain.Contract
	Message string `json:"message"`
}

// Create lida com POST /v1/contracts. As datas chegam como string no payload
// e são coercidas para valor de data pelo DTO antes de chegar ao serviço.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var data domain.ContractCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	contract, err := h.Service.Create(r.Context(), data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, contract)
}

// GetByID lida com GET /v1/contracts/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	contract, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, contract)
}

// GetAll lida com GET /v1/contracts.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, contracts)
}

// GetByClientID lida com GET /v1/contracts/client/{clientId}.
func (h *Handler) GetByClientID(w http.ResponseWriter, r *http.Request) {
	clientID, err := respond.ParseID(r, "clientId", "Client not found")
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	contracts, err := h.Service.GetByClientID(r.Context(), clientID)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, contracts)
}

// Update lida com PATCH /v1/contracts/{id}. Diferente das demais entidades,
// o contrato aceita corpo vazio (atualização sem efeito).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	var data domain.ContractUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	contract, err := h.Service.Update(r.Context(), id, data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{Contract: contract, Message: "Contract updated successfully"})
}

// Delete lida com DELETE /v1/contracts/{id}.
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
	return respond.ParseID(r, "id", "Contract not found")
}
