package serviceservice

import (
	"context"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
)

// Service implementa as regras de negócio da entidade Service (serviço
// contratável): unicidade do código e atualização parcial por presença.
type Service struct {
	repo   domain.ServiceRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Serviços.
func NewService(repo domain.ServiceRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Create cria um novo serviço após a checagem de unicidade do código.
func (s *Service) Create(ctx context.Context, data domain.ServiceCreateRequest) (domain.Service, error) {
	s.logger.Debug("Iniciando criação de serviço no serviço.", map[string]interface{}{"code": data.Code})

	if _, err := s.repo.FindByCode(ctx, data.Code); err == nil {
		return domain.Service{}, apperror.NewConflictError("Service with this code already exists.")
	} else if !apperror.IsNotFound(err) {
		return domain.Service{}, err
	}

	service := domain.Service{
		Name:         data.Name,
		Code:         data.Code,
		DefaultPrice: data.DefaultPrice,
	}

	created, err := s.repo.Save(ctx, service)
	if err != nil {
		return domain.Service{}, err
	}

	s.logger.Info("Serviço criado com sucesso.", map[string]interface{}{"id": created.ID, "code": created.Code})
	return created, nil
}

// GetByID busca um serviço pelo ID.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

// GetAll lista todos os serviços.
func (s *Service) GetAll(ctx context.Context) ([]domain.Service, error) {
	return s.repo.ListAll(ctx)
}

// Update aplica uma atualização parcial; código alterado passa por nova
// checagem de unicidade contra os demais serviços.
func (s *Service) Update(ctx context.Context, id int64, data domain.ServiceUpdateRequest) (domain.Service, error) {
	s.logger.Debug("Iniciando atualização de serviço no serviço.", map[string]interface{}{"id": id})

	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Service{}, err
	}

	if data.Code != nil && *data.Code != service.Code {
		if _, err := s.repo.FindByCode(ctx, *data.Code); err == nil {
			return domain.Service{}, apperror.NewConflictError("Service code already in use.")
		} else if !apperror.IsNotFound(err) {
			return domain.Service{}, err
		}
		service.Code = *data.Code
	}

	if data.Name != nil {
		service.Name = *data.Name
	}
	if data.DefaultPrice != nil {
		service.DefaultPrice = data.DefaultPrice
	}

	updated, err := s.repo.Save(ctx, service)
	if err != nil {
		return domain.Service{}, err
	}

	s.logger.Info("Serviço atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove um serviço existente; falha com not found se ausente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Serviço removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}
