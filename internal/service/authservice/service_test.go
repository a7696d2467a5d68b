package authservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
	"gescon/internal/service/authservice"
)

// MockUserRepository é uma implementação mock da interface domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenGenerator é uma implementação mock da interface authservice.TokenGenerator
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) GenerateToken(userID int64, userRole string) (string, error) {
	args := m.Called(userID, userRole)
	return args.String(0), args.Error(1)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("error")
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthenticate_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenGenerator)
	svc := authservice.NewService(mockRepo, mockToken, newTestLogger())

	hash := mustHash(t, "segredo1")
	user := domain.User{ID: 1, Email: "ana@empresa.com", PasswordHash: hash, Role: domain.RoleAdmin}

	mockRepo.On("FindByEmail", mock.Anything, "ana@empresa.com").Return(user, nil)
	mockToken.On("GenerateToken", int64(1), "ADMIN").Return("jwt-assinado", nil)

	result, err := svc.Authenticate(context.Background(), "ana@empresa.com", "segredo1")

	assert.NoError(t, err)
	assert.Equal(t, "jwt-assinado", result.Token)
	assert.Equal(t, int64(1), result.User.ID)
	// O hash nunca sai no resultado.
	assert.Empty(t, result.User.PasswordHash)
	mockToken.AssertExpectations(t)
}

func TestAuthenticate_Fail_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenGenerator)
	svc := authservice.NewService(mockRepo, mockToken, newTestLogger())

	mockRepo.On("FindByEmail", mock.Anything, "ninguem@empresa.com").
		Return(domain.User{}, apperror.NewNotFoundError("User not found"))

	_, err := svc.Authenticate(context.Background(), "ninguem@empresa.com", "qualquer")

	assert.Error(t, err)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	assert.Equal(t, "Incorrect email/password combination", err.Error())
	mockToken.AssertNotCalled(t, "GenerateToken")
}

func TestAuthenticate_Fail_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenGenerator)
	svc := authservice.NewService(mockRepo, mockToken, newTestLogger())

	hash := mustHash(t, "segredo1")
	user := domain.User{ID: 1, Email: "ana@empresa.com", PasswordHash: hash, Role: domain.RoleAdmin}

	mockRepo.On("FindByEmail", mock.Anything, "ana@empresa.com").Return(user, nil)

	_, err := svc.Authenticate(context.Background(), "ana@empresa.com", "errada")

	assert.Error(t, err)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	// Senha errada e e-mail desconhecido devolvem a mesma mensagem.
	assert.Equal(t, "Incorrect email/password combination", err.Error())
	mockToken.AssertNotCalled(t, "GenerateToken")
}

func TestAuthenticate_Fail_TokenGeneration(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenGenerator)
	svc := authservice.NewService(mockRepo, mockToken, newTestLogger())

	hash := mustHash(t, "segredo1")
	user := domain.User{ID: 1, Email: "ana@empresa.com", PasswordHash: hash, Role: domain.RoleAdmin}

	mockRepo.On("FindByEmail", mock.Anything, "ana@empresa.com").Return(user, nil)
	mockToken.On("GenerateToken", int64(1), "ADMIN").Return("", errors.New("chave inválida"))

	_, err := svc.Authenticate(context.Background(), "ana@empresa.com", "segredo1")

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestAuthenticate_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenGenerator)
	svc := authservice.NewService(mockRepo, mockToken, newTestLogger())

	repoErr := apperror.NewDBError("failed to find user by email", errors.New("connection refused"))
	mockRepo.On("FindByEmail", mock.Anything, "ana@empresa.com").Return(domain.User{}, repoErr)

	_, err := svc.Authenticate(context.Background(), "ana@empresa.com", "segredo1")

	assert.Error(t, err)
	assert.Equal(t, repoErr, err)
	mockToken.AssertNotCalled(t, "GenerateToken")
}
