package domain

import "context"

// User representa a entidade do usuário do sistema.
type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role         UserRole `json:"role"`
}

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

// Papéis conhecidos. O registro atribui sempre RoleEmployee; os demais
// existem para dados legados e extensões futuras.
const (
	RoleAdmin    UserRole = "ADMIN"
	RoleFinance  UserRole = "FINANCE"
	RoleEmployee UserRole = "EMPLOYEE"
)

// UserRegisterRequest representa o payload de entrada para o registro.
type UserRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserLoginRequest representa o payload de entrada para o login.
type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateRequest é o DTO de atualização parcial (presença via ponteiro).
type UserUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// IsEmpty informa se nenhum campo foi fornecido na atualização.
func (r UserUpdateRequest) IsEmpty() bool {
	return r.Email == nil && r.Password == nil
}

// UserRepository define o contrato de persistência para a entidade User.
// O hash da senha chega pronto do serviço; o repositório nunca re-hasheia.
type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	ListAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int64) error
}
