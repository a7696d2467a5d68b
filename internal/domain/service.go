package domain

import "context"

// Service representa um serviço prestado, contratável por clientes.
// O código alfanumérico é a chave natural, única entre serviços.
type Service struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	DefaultPrice *float64 `json:"defaultPrice"`
}

// ServiceCreateRequest é o DTO validado de criação de serviço.
type ServiceCreateRequest struct {
	Name         string   `json:"name" validate:"required,min=3"`
	Code         string   `json:"code" validate:"required,min=2"`
	DefaultPrice *float64 `json:"defaultPrice" validate:"omitempty,gt=0"`
}

// ServiceUpdateRequest é o DTO de atualização parcial (presença via ponteiro).
type ServiceUpdateRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=3"`
	Code         *string  `json:"code" validate:"omitempty,min=2"`
	DefaultPrice *float64 `json:"defaultPrice" validate:"omitempty,gt=0"`
}

// IsEmpty informa se nenhum campo foi fornecido na atualização.
func (r ServiceUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Code == nil && r.DefaultPrice == nil
}

// ServiceRepository define o contrato de persistência para a entidade Service.
type ServiceRepository interface {
	Save(ctx context.Context, service Service) (Service, error)
	FindByID(ctx context.Context, id int64) (Service, error)
	FindByCode(ctx context.Context, code string) (Service, error)
	ListAll(ctx context.Context) ([]Service, error)
	Delete(ctx context.Context, id int64) error
}
