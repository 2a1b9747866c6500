package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	userID := int64(123)

	// The hash is unpredictable; check it is non-empty and the expiry is in
	// the future.
	mockRepo.On("Create", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
		return hash != ""
	}), mock.MatchedBy(func(expiresAt time.Time) bool {
		return expiresAt.After(time.Now())
	})).Return(nil)

	token, err := service.Create(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	// base64 of 32 random bytes is 44 characters with padding
	assert.Len(t, token, 44)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, int64(123), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(errors.New("database error"))

	_, err := service.Create(context.Background(), 123)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
}

func TestService_Validate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Validate", mock.Anything, mock.MatchedBy(func(hash string) bool {
		return hash != ""
	})).Return(123, nil)

	userID, err := service.Validate(context.Background(), "some_token")
	assert.NoError(t, err)
	assert.Equal(t, int64(123), userID)

	mockRepo.AssertExpectations(t)
}

func TestService_Validate_InvalidToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Validate", mock.Anything, mock.AnythingOfType("string")).
		Return(0, errors.New("invalid session"))

	_, err := service.Validate(context.Background(), "bad_token")
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_CreateProducesDistinctTokens(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, int64(1), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil)

	first, err := service.Create(context.Background(), 1)
	assert.NoError(t, err)
	second, err := service.Create(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, mock.MatchedBy(func(hash string) bool {
		return hash != ""
	})).Return(nil)

	err := service.Delete(context.Background(), "some_token")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}
