package clientservice

import (
	"context"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
)

// Service implementa as regras de negócio da entidade Client: unicidade de
// CNPJ e código na criação e na atualização, e semântica de atualização
// parcial por presença de campo.
type Service struct {
	repo   domain.ClientRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Clientes.
func NewService(repo domain.ClientRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Register cria um novo cliente após as checagens de unicidade das chaves
// naturais. A identidade é atribuída pelo repositório.
func (s *Service) Register(ctx context.Context, data domain.ClientCreateRequest) (domain.Client, error) {
	s.logger.Debug("Iniciando registro de cliente no serviço.", map[string]interface{}{"cnpj": data.CNPJ})

	if _, err := s.repo.FindByCnpj(ctx, data.CNPJ); err == nil {
		return domain.Client{}, apperror.NewConflictError("Client with this CNPJ already exists.")
	} else if !apperror.IsNotFound(err) {
		return domain.Client{}, err
	}

	if data.Code != nil {
		if _, err := s.repo.FindByCode(ctx, *data.Code); err == nil {
			return domain.Client{}, apperror.NewConflictError("Client with this Code already exists.")
		} else if !apperror.IsNotFound(err) {
			return domain.Client{}, err
		}
	}

	client := domain.Client{
		Code:        data.Code,
		Nickname:    data.Nickname,
		CompanyName: data.CompanyName,
		CNPJ:        data.CNPJ,
	}

	created, err := s.repo.Save(ctx, client)
	if err != nil {
		return domain.Client{}, err
	}

	s.logger.Info("Cliente registrado com sucesso.", map[string]interface{}{"id": created.ID, "cnpj": created.CNPJ})
	return created, nil
}

// GetByID busca um cliente pelo ID.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// GetAll lista todos os clientes.
func (s *Service) GetAll(ctx context.Context) ([]domain.Client, error) {
	return s.repo.ListAll(ctx)
}

// Update aplica uma atualização parcial. Campos ausentes ficam inalterados;
// campos presentes são aplicados mesmo com valor zero. Chaves naturais
// alteradas passam por nova checagem de unicidade contra os demais clientes.
func (s *Service) Update(ctx context.Context, id int64, data domain.ClientUpdateRequest) (domain.Client, error) {
	s.logger.Debug("Iniciando atualização de cliente no serviço.", map[string]interface{}{"id": id})

	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}

	if data.CNPJ != nil && *data.CNPJ != client.CNPJ {
		if _, err := s.repo.FindByCnpj(ctx, *data.CNPJ); err == nil {
			return domain.Client{}, apperror.NewConflictError("CNPJ is already in use by another client.")
		} else if !apperror.IsNotFound(err) {
			return domain.Client{}, err
		}
		client.CNPJ = *data.CNPJ
	}

	if data.Code != nil && (client.Code == nil || *data.Code != *client.Code) {
		if _, err := s.repo.FindByCode(ctx, *data.Code); err == nil {
			return domain.Client{}, apperror.NewConflictError("Code is already in use by another client.")
		} else if !apperror.IsNotFound(err) {
			return domain.Client{}, err
		}
		client.Code = data.Code
	}

	if data.Nickname != nil {
		client.Nickname = *data.Nickname
	}
	if data.CompanyName != nil {
		client.CompanyName = *data.CompanyName
	}

	updated, err := s.repo.Save(ctx, client)
	if err != nil {
		return domain.Client{}, err
	}

	s.logger.Info("Cliente atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove um cliente existente; falha com not found se ausente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Cliente removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}
