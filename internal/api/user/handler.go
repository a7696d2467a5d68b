package user

import (
	"context"
	"encoding/json"
	"net/http"

	"gescon/internal/api/respond"
	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
	"gescon/internal/pkg/validation"
	"gescon/internal/service/authservice"
)

// UserService define o contrato de CRUD de usuário esperado pelo Handler.
type UserService interface {
	Register(ctx context.Context, data domain.UserRegisterRequest) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, data domain.UserUpdateRequest) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// AuthService define o contrato de autenticação esperado pelo Handler.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (authservice.Result, error)
}

// Handler agrupa os métodos HTTP da entidade User e da autenticação.
type Handler struct {
	Service   UserService
	Auth      AuthService
	Validator *validation.Validator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando as dependências.
func NewHandler(svc UserService, auth AuthService, v *validation.Validator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Auth: auth, Validator: v, Logger: log}
}

type updateResponse struct {
	domain.User
	Message string `json:"message"`
}

// Register lida com POST /v1/users/register.
// @Summary Registra um novo usuário
// @Description Cria um novo usuário com papel EMPLOYEE, hasheia a senha e salva no banco.
// @Tags users
// @Accept json
// @Produce json
// @Param registration body domain.UserRegisterRequest true "Credenciais de registro (email e senha)"
// @Success 201 {object} domain.User "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Schema inválido ou email já cadastrado"
// @Router /v1/users/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var data domain.UserRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	user, err := h.Service.Register(r.Context(), data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, user)
}

// Login lida com POST /v1/users/login.
// @Summary Autentica um usuário e retorna um JWT
// @Description Recebe email/senha, valida as credenciais e emite o token de sessão.
// @Tags users
// @Accept json
// @Produce json
// @Param login body domain.UserLoginRequest true "Credenciais do usuário"
// @Success 200 {object} authservice.Result "Token e usuário autenticado"
// @Failure 400 {object} domain.ErrorResponse "Schema inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /v1/users/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var data domain.UserLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	result, err := h.Auth.Authenticate(r.Context(), data.Email, data.Password)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}

// GetByID lida com GET /v1/users/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	user, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, user)
}

// GetAll lida com GET /v1/users.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, users)
}

// Update lida com PATCH /v1/users/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	var data domain.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.Error(w, h.Logger, respond.InvalidBody())
		return
	}
	if err := h.Validator.Struct(data); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	if data.IsEmpty() {
		respond.Error(w, h.Logger, apperror.NewSchemaError([]string{"at least one field (email or password) must be provided for update"}))
		return
	}

	user, err := h.Service.Update(r.Context(), id, data)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{User: user, Message: "User updated successfully"})
}

// Delete lida com DELETE /v1/users/{id}.
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
	return respond.ParseID(r, "id", "User not found")
}
