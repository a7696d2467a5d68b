package service

import (
	"context"
	"encoding/json"
	"net/http"

	"gescon/internal/api/respond"
	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
	"gescon/internal/pkg/validation"
)

// ServiceService define o contrato que o Handler espera da camada de Serviço.
type ServiceService interface {
	Create(ctx context.Context, data domain.ServiceCreateRequest) (domain.Service, error)
	GetByID(ctx context.Context, id int64) (domain.Service, error)
	GetAll(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, id int64, data domain.ServiceUpdateRequest) (domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// Handler agrupa os métodos HTTP da entidade Service.
type Handler struct {
	Service   ServiceService
	Validator *validation.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando as dependências.
func NewHandler(svc ServiceService, v *validation.Validator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

type updateResponse struct {
	domain.Service
	Message string `json:"message"`
}

// Create lida com POST /v1/services.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var data domain.ServiceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	service, err := h.Service.Create(r.Context(), data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, service)
}

// GetByID lida com GET /v1/services/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	service, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, service)
}

// GetAll lida com GET /v1/services.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, services)
}

// Update lida com PATCH /v1/services/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	var data domain.ServiceUpdateRequest
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

	service, err := h.Service.Update(r.Context(), id, data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{Service: service, Message: "Service updated successfully"})
}

// Delete lida com DELETE /v1/services/{id}.
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
	return respond.ParseID(r, "id", "Service not found")
}
