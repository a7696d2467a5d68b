package authservice

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
)

// TokenGenerator é o contrato de emissão de token exigido deste serviço.
// Este é o único ponto do sistema que emite tokens.
type TokenGenerator interface {
	GenerateToken(userID int64, userRole string) (string, error)
}

// Service autentica usuários por e-mail e senha e emite o JWT de sessão.
type Service struct {
	repo     domain.UserRepository
	tokenSvc TokenGenerator
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de autenticação.
func NewService(repo domain.UserRepository, tokenSvc TokenGenerator, log logger.Logger) *Service {
	return &Service{repo: repo, tokenSvc: tokenSvc, logger: log}
}

// Result é o retorno de uma autenticação bem sucedida.
type Result struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// credentialsMessage é a mesma mensagem para e-mail desconhecido e senha
// incorreta: a resposta não distingue os dois casos.
const credentialsMessage = "Incorrect email/password combination"

// Authenticate valida as credenciais e, em caso de sucesso, devolve o token
// assinado e o usuário (com o hash de senha em branco).
func (s *Service) Authenticate(ctx context.Context, email, password string) (Result, error) {
	s.logger.Debug("Iniciando autenticação de usuário.", map[string]interface{}{"email": email})

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return Result{}, apperror.NewUnauthorizedError(credentialsMessage)
		}
		return Result{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Tentativa de login com senha incorreta.", map[string]interface{}{"email": email})
		return Result{}, apperror.NewUnauthorizedError(credentialsMessage)
	}

	tokenString, err := s.tokenSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return Result{}, apperror.NewInternalError("falha ao gerar token de autenticação", err)
	}

	user.PasswordHash = ""
	s.logger.Info("Usuário autenticado com sucesso.", map[string]interface{}{"id": user.ID})
	return Result{Token: tokenString, User: user}, nil
}
