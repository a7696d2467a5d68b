package userservice

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
)

// Service implementa as regras de negócio da entidade User. O tratamento de
// credencial é responsabilidade exclusiva desta camada: a senha só é
// hasheada quando uma senha nova em texto puro é de fato fornecida, e nenhum
// caminho de leitura expõe o hash armazenado.
type Service struct {
	repo   domain.UserRepository
	logger logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o Repositório.
func NewService(repo domain.UserRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Register registra um novo usuário com papel EMPLOYEE, hasheando a senha
// antes da persistência.
func (s *Service) Register(ctx context.Context, data domain.UserRegisterRequest) (domain.User, error) {
	s.logger.Debug("Iniciando registro de usuário no serviço.", map[string]interface{}{"email": data.Email})

	if _, err := s.repo.FindByEmail(ctx, data.Email); err == nil {
		return domain.User{}, apperror.NewConflictError("User with this email already exists.")
	} else if !apperror.IsNotFound(err) {
		return domain.User{}, err
	}

	hash, err := hashPassword(data.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Email:        data.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
	}

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"id": created.ID, "email": created.Email})
	return sanitize(created), nil
}

// GetByID busca um usuário pelo ID, com o hash de senha em branco.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return sanitize(user), nil
}

// GetAll lista todos os usuários, com os hashes de senha em branco.
func (s *Service) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(users))
	for _, user := range users {
		out = append(out, sanitize(user))
	}
	return out, nil
}

// Update aplica uma atualização parcial de e-mail e/ou senha. O re-hash só
// acontece quando uma senha nova foi fornecida; uma atualização só de e-mail
// persiste o hash existente intocado.
func (s *Service) Update(ctx context.Context, id int64, data domain.UserUpdateRequest) (domain.User, error) {
	s.logger.Debug("Iniciando atualização de usuário no serviço.", map[string]interface{}{"id": id})

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if data.Email != nil {
		user.Email = *data.Email
	}
	if data.Password != nil {
		hash, err := hashPassword(*data.Password)
		if err != nil {
			return domain.User{}, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.repo.Save(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Usuário atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return sanitize(updated), nil
}

// Delete remove um usuário existente; falha com not found se ausente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Usuário removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// hashPassword gera o hash bcrypt de uma senha em texto puro.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewInternalError("falha ao gerar hash da senha", err)
	}
	return string(hashed), nil
}

// sanitize devolve a cópia do usuário com o hash de senha em branco.
func sanitize(user domain.User) domain.User {
	user.PasswordHash = ""
	return user
}
