package userservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
	"gescon/internal/service/userservice"
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

func newTestLogger() logger.Logger {
	return logger.NewLogger("error")
}

func strPtr(v string) *string { return &v }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister_Success_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	data := domain.UserRegisterRequest{Email: "ana@empresa.com", Password: "segredo1"}
	var saved domain.User

	mockRepo.On("FindByEmail", mock.Anything, data.Email).
		Return(domain.User{}, apperror.NewNotFoundError("User not found"))
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return u.Email == data.Email && u.Role == domain.RoleEmployee
	})).Return(domain.User{ID: 1, Email: data.Email, PasswordHash: "hash", Role: domain.RoleEmployee}, nil)

	result, err := svc.Register(context.Background(), data)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	// A senha nunca é persistida em texto puro.
	assert.NotEqual(t, data.Password, saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte(data.Password)))
	// E o hash não vaza no retorno.
	assert.Empty(t, result.PasswordHash)
	mockRepo.AssertExpectations(t)
}

func TestRegister_Fail_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	data := domain.UserRegisterRequest{Email: "ana@empresa.com", Password: "segredo1"}

	mockRepo.On("FindByEmail", mock.Anything, data.Email).
		Return(domain.User{ID: 9, Email: data.Email}, nil)

	_, err := svc.Register(context.Background(), data)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, "User with this email already exists.", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

func TestGetByID_BlanksPasswordHash(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Email: "ana@empresa.com", PasswordHash: "hash", Role: domain.RoleAdmin}, nil)

	result, err := svc.GetByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, result.PasswordHash)
	assert.Equal(t, domain.RoleAdmin, result.Role)
}

func TestGetAll_BlanksPasswordHashes(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("ListAll", mock.Anything).Return([]domain.User{
		{ID: 1, Email: "ana@empresa.com", PasswordHash: "hash1", Role: domain.RoleAdmin},
		{ID: 2, Email: "bia@empresa.com", PasswordHash: "hash2", Role: domain.RoleEmployee},
	}, nil)

	result, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	for _, user := range result {
		assert.Empty(t, user.PasswordHash)
	}
}

func TestUpdate_EmailOnly_KeepsExistingHash(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	existingHash := mustHash(t, "segredo1")
	existing := domain.User{ID: 1, Email: "ana@empresa.com", PasswordHash: existingHash, Role: domain.RoleEmployee}

	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		// Sem senha nova o hash persistido é exatamente o armazenado.
		return u.Email == "ana.souza@empresa.com" && u.PasswordHash == existingHash
	})).Return(domain.User{ID: 1, Email: "ana.souza@empresa.com", PasswordHash: existingHash, Role: domain.RoleEmployee}, nil)

	result, err := svc.Update(context.Background(), 1, domain.UserUpdateRequest{Email: strPtr("ana.souza@empresa.com")})

	assert.NoError(t, err)
	assert.Equal(t, "ana.souza@empresa.com", result.Email)
	assert.Empty(t, result.PasswordHash)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_NewPassword_Rehashes(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	existingHash := mustHash(t, "segredo1")
	existing := domain.User{ID: 1, Email: "ana@empresa.com", PasswordHash: existingHash, Role: domain.RoleEmployee}
	var saved domain.User

	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return u.PasswordHash != existingHash
	})).Return(existing, nil)

	_, err := svc.Update(context.Background(), 1, domain.UserUpdateRequest{Password: strPtr("novaSenha2")})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("novaSenha2")))
	mockRepo.AssertExpectations(t)
}

func TestUpdate_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(99)).
		Return(domain.User{}, apperror.NewNotFoundError("User not found"))

	_, err := svc.Update(context.Background(), 99, domain.UserUpdateRequest{Email: strPtr("x@empresa.com")})

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestDelete_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Email: "ana@empresa.com"}, nil)
	mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	err := svc.Delete(context.Background(), 1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDelete_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(99)).
		Return(domain.User{}, apperror.NewNotFoundError("User not found"))

	err := svc.Delete(context.Background(), 99)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Delete")
}
