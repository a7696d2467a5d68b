package serviceservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/logger"
	"gescon/internal/service/serviceservice"
)

// MockServiceRepository é uma implementação mock da interface domain.ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Save(ctx context.Context, service domain.Service) (domain.Service, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id int64) (domain.Service, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByCode(ctx context.Context, code string) (domain.Service, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListAll(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("error")
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	data := domain.ServiceCreateRequest{Name: "Consultoria", Code: "CONS-01", DefaultPrice: floatPtr(150)}

	mockRepo.On("FindByCode", mock.Anything, "CONS-01").
		Return(domain.Service{}, apperror.NewNotFoundError("Service not found"))
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(s domain.Service) bool {
		return s.ID == 0 && s.Code == "CONS-01" && s.DefaultPrice != nil && *s.DefaultPrice == 150
	})).Return(domain.Service{ID: 1, Name: "Consultoria", Code: "CONS-01", DefaultPrice: floatPtr(150)}, nil)

	result, err := svc.Create(context.Background(), data)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	mockRepo.AssertExpectations(t)
}

func TestCreate_Fail_DuplicateCode(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	data := domain.ServiceCreateRequest{Name: "Consultoria", Code: "CONS-01"}

	mockRepo.On("FindByCode", mock.Anything, "CONS-01").
		Return(domain.Service{ID: 2, Code: "CONS-01"}, nil)

	_, err := svc.Create(context.Background(), data)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, "Service with this code already exists.", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

func TestCreate_NilPriceAllowed(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	data := domain.ServiceCreateRequest{Name: "Suporte", Code: "SUP-01"}

	mockRepo.On("FindByCode", mock.Anything, "SUP-01").
		Return(domain.Service{}, apperror.NewNotFoundError("Service not found"))
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(s domain.Service) bool {
		return s.DefaultPrice == nil
	})).Return(domain.Service{ID: 3, Name: "Suporte", Code: "SUP-01"}, nil)

	result, err := svc.Create(context.Background(), data)

	assert.NoError(t, err)
	assert.Nil(t, result.DefaultPrice)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_Success_CodeChanged(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	existing := domain.Service{ID: 4, Name: "Suporte", Code: "SUP-01"}
	mockRepo.On("FindByID", mock.Anything, int64(4)).Return(existing, nil)
	mockRepo.On("FindByCode", mock.Anything, "SUP-02").
		Return(domain.Service{}, apperror.NewNotFoundError("Service not found"))
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(s domain.Service) bool {
		return s.ID == 4 && s.Code == "SUP-02" && s.Name == "Suporte"
	})).Return(domain.Service{ID: 4, Name: "Suporte", Code: "SUP-02"}, nil)

	result, err := svc.Update(context.Background(), 4, domain.ServiceUpdateRequest{Code: strPtr("SUP-02")})

	assert.NoError(t, err)
	assert.Equal(t, "SUP-02", result.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_Fail_CodeConflict(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	existing := domain.Service{ID: 4, Name: "Suporte", Code: "SUP-01"}
	mockRepo.On("FindByID", mock.Anything, int64(4)).Return(existing, nil)
	mockRepo.On("FindByCode", mock.Anything, "CONS-01").
		Return(domain.Service{ID: 1, Code: "CONS-01"}, nil)

	_, err := svc.Update(context.Background(), 4, domain.ServiceUpdateRequest{Code: strPtr("CONS-01")})

	assert.Error(t, err)
	assert.Equal(t, "Service code already in use.", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

func TestUpdate_UnchangedCodeSkipsUniquenessCheck(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	existing := domain.Service{ID: 4, Name: "Suporte", Code: "SUP-01"}
	mockRepo.On("FindByID", mock.Anything, int64(4)).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(existing, nil)

	_, err := svc.Update(context.Background(), 4, domain.ServiceUpdateRequest{Code: strPtr("SUP-01"), Name: strPtr("Suporte")})

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "FindByCode")
}

func TestUpdate_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(99)).
		Return(domain.Service{}, apperror.NewNotFoundError("Service not found"))

	_, err := svc.Update(context.Background(), 99, domain.ServiceUpdateRequest{Name: strPtr("X")})

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestDelete_Success(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(4)).
		Return(domain.Service{ID: 4, Code: "SUP-01"}, nil)
	mockRepo.On("Delete", mock.Anything, int64(4)).Return(nil).Once()

	err := svc.Delete(context.Background(), 4)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDelete_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(99)).
		Return(domain.Service{}, apperror.NewNotFoundError("Service not found"))

	err := svc.Delete(context.Background(), 99)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestGetAll_Success(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	svc := serviceservice.NewService(mockRepo, newTestLogger())

	expected := []domain.Service{
		{ID: 1, Name: "Consultoria", Code: "CONS-01"},
		{ID: 2, Name: "Suporte", Code: "SUP-01"},
	}
	mockRepo.On("ListAll", mock.Anything).Return(expected, nil)

	result, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}
