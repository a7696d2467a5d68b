package contractservice

import (
	"context"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
)

// Service implementa as regras de negócio da entidade Contract: unicidade do
// código de contrato na criação e atualização parcial por presença de campo.
// As referências a cliente e serviço são aceitas por id, sem verificação de
// existência no cadastro.
type Service struct {
	repo   domain.ContractRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Contratos.
func NewService(repo domain.ContractRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Create cria um novo contrato após a checagem de unicidade do código.
func (s *Service) Create(ctx context.Context, data domain.ContractCreateRequest) (domain.Contract, error) {
	s.logger.Debug("Iniciando criação de contrato no serviço.", map[string]interface{}{"contract_code": data.ContractCode})

	if _, err := s.repo.FindByCode(ctx, data.ContractCode); err == nil {
		return domain.Contract{}, apperror.NewConflictError("Contract with this code already exists.")
	} else if !apperror.IsNotFound(err) {
		return domain.Contract{}, err
	}

	contract := domain.Contract{
		ContractCode: data.ContractCode,
		ClientID:     *data.ClientID,
		ServiceID:    *data.ServiceID,
		Quantity:     *data.Quantity,
		UnitPrice:    *data.UnitPrice,
		StartDate:    data.StartDate.Time,
		Status:       data.Status,
		Observation:  data.Observation,
	}
	if data.EndDate != nil {
		endDate := data.EndDate.Time
		contract.EndDate = &endDate
	}

	created, err := s.repo.Save(ctx, contract)
	if err != nil {
		return domain.Contract{}, err
	}

	s.logger.Info("Contrato criado com sucesso.", map[string]interface{}{"id": created.ID, "contract_code": created.ContractCode})
	return created, nil
}

// GetByID busca um contrato pelo ID.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Contract, error) {
	return s.repo.FindByID(ctx, id)
}

// GetAll lista todos os contratos.
func (s *Service) GetAll(ctx context.Context) ([]domain.Contract, error) {
	return s.repo.ListAll(ctx)
}

// GetByClientID lista os contratos de um cliente.
func (s *Service) GetByClientID(ctx context.Context, clientID int64) ([]domain.Contract, error) {
	return s.repo.FindByClientID(ctx, clientID)
}

// Update aplica uma atualização parcial. A unicidade de um código de
// contrato alterado é garantida pela constraint do banco, traduzida pelo
// repositório no mesmo erro de duplicidade.
func (s *Service) Update(ctx context.Context, id int64, data domain.ContractUpdateRequest) (domain.Contract, error) {
	s.logger.Debug("Iniciando atualização de contrato no serviço.", map[string]interface{}{"id": id})

	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contract{}, err
	}

	if data.ContractCode != nil {
		contract.ContractCode = *data.ContractCode
	}
	if data.ClientID != nil {
		contract.ClientID = *data.ClientID
	}
	if data.ServiceID != nil {
		contract.ServiceID = *data.ServiceID
	}
	if data.Quantity != nil {
		contract.Quantity = *data.Quantity
	}
	if data.UnitPrice != nil {
		contract.UnitPrice = *data.UnitPrice
	}
	if data.StartDate != nil {
		contract.StartDate = data.StartDate.Time
	}
	if data.EndDate != nil {
		endDate := data.EndDate.Time
		contract.EndDate = &endDate
	}
	if data.Status != nil {
		contract.Status = *data.Status
	}
	if data.Observation != nil {
		contract.Observation = data.Observation
	}

	updated, err := s.repo.Save(ctx, contract)
	if err != nil {
		return domain.Contract{}, err
	}

	s.logger.Info("Contrato atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove um contrato existente; falha com not found se ausente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Contrato removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}
