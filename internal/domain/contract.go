package domain

import (
	"context"
	"time"
)

// ContractStatus é o estado do contrato, restrito à enumeração fixa.
type ContractStatus string

const (
	ContractActive   ContractStatus = "ACTIVE"
	ContractInactive ContractStatus = "INACTIVE"
	ContractPending  ContractStatus = "PENDING"
)

// Contract representa um contrato de prestação de serviço entre um cliente e
// um serviço cadastrado. O código de contrato é a chave natural, única.
// ClientID e ServiceID referenciam as entidades por id, sem verificação de
// existência no cadastro.
type Contract struct {
	ID           int64          `json:"id"`
	ContractCode string         `json:"contractCode"`
	ClientID     int64          `json:"clientId"`
	ServiceID    int64          `json:"serviceId"`
	Quantity     int64          `json:"quantity"`
	UnitPrice    float64        `json:"unitPrice"`
	StartDate    time.Time      `json:"startDate"`
	EndDate      *time.Time     `json:"endDate"`
	Status       ContractStatus `json:"status"`
	Observation  *string        `json:"observation"`
}

// ContractCreateRequest é o DTO validado de criação de contrato. As datas
// são decodificadas pelo tipo Date: o serviço recebe sempre um valor de
// data, nunca a string original do payload.
type ContractCreateRequest struct {
	ContractCode string         `json:"contractCode" validate:"required"`
	ClientID     *int64         `json:"clientId" validate:"required"`
	ServiceID    *int64         `json:"serviceId" validate:"required"`
	Quantity     *int64         `json:"quantity" validate:"required"`
	UnitPrice    *float64       `json:"unitPrice" validate:"required"`
	StartDate    *Date          `json:"startDate" validate:"required"`
	EndDate      *Date          `json:"endDate"`
	Status       ContractStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE PENDING"`
	Observation  *string        `json:"observation"`
}

// ContractUpdateRequest é o DTO de atualização parcial (presença via
// ponteiro). Diferente das demais entidades, o contrato aceita corpo de
// atualização vazio, tratado como no-op.
type ContractUpdateRequest struct {
	ContractCode *string         `json:"contractCode" validate:"omitempty,min=1"`
	ClientID     *int64          `json:"clientId"`
	ServiceID    *int64          `json:"serviceId"`
	Quantity     *int64          `json:"quantity"`
	UnitPrice    *float64        `json:"unitPrice"`
	StartDate    *Date           `json:"startDate"`
	EndDate      *Date           `json:"endDate"`
	Status       *ContractStatus `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE PENDING"`
	Observation  *string         `json:"observation"`
}

// ContractRepository define o contrato de persistência para a entidade Contract.
type ContractRepository interface {
	Save(ctx context.Context, contract Contract) (Contract, error)
	FindByID(ctx context.Context, id int64) (Contract, error)
	FindByCode(ctx context.Context, code string) (Contract, error)
	FindByClientID(ctx context.Context, clientID int64) ([]Contract, error)
	ListAll(ctx context.Context) ([]Contract, error)
	Delete(ctx context.Context, id int64) error
}
