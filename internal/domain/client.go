package domain

import "context"

// Client representa a entidade de cliente (empresa contratante).
// O ID é a identidade gerada pelo banco; o CNPJ e o código numérico opcional
// são as chaves naturais, únicas entre clientes.
type Client struct {
	ID          int64  `json:"id"`
	Code        *int64 `json:"code"`
	Nickname    string `json:"nickname"`
	CompanyName string `json:"companyName"`
	CNPJ        string `json:"cnpj"`
}

// ClientCreateRequest é o DTO validado de criação de cliente.
type ClientCreateRequest struct {
	Code        *int64 `json:"code" validate:"omitempty"`
	Nickname    string `json:"nickname" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	CNPJ        string `json:"cnpj" validate:"required,len=14"`
}

// ClientUpdateRequest é o DTO de atualização parcial. Campos ponteiro
// distinguem "campo ausente" de "campo com valor zero": um valor explícito
// (inclusive zero ou string vazia) é sempre aplicado.
type ClientUpdateRequest struct {
	Code        *int64  `json:"code" validate:"omitempty"`
	Nickname    *string `json:"nickname" validate:"omitempty,min=1"`
	CompanyName *string `json:"companyName" validate:"omitempty,min=1"`
	CNPJ        *string `json:"cnpj" validate:"omitempty,len=14"`
}

// IsEmpty informa se nenhum campo foi fornecido na atualização.
func (r ClientUpdateRequest) IsEmpty() bool {
	return r.Code == nil && r.Nickname == nil && r.CompanyName == nil && r.CNPJ == nil
}

// ClientRepository define o contrato de persistência para a entidade Client.
// Save insere quando ID == 0 e atualiza caso contrário, devolvendo a
// entidade com a identidade atribuída.
type ClientRepository interface {
	Save(ctx context.Context, client Client) (Client, error)
	FindByID(ctx context.Context, id int64) (Client, error)
	FindByCnpj(ctx context.Context, cnpj string) (Client, error)
	FindByCode(ctx context.Context, code int64) (Client, error)
	ListAll(ctx context.Context) ([]Client, error)
	Delete(ctx context.Context, id int64) error
}
