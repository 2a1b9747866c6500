package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, login, passwordHash string) (int64, error) {
	args := m.Called(ctx, login, passwordHash)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(User), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewPasswordValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	login := "testuser"
	password := "Testpassword123"

	// The exact hash is unpredictable; assert a non-empty one reaches the repo.
	mockRepo.On("Create", mock.Anything, login, mock.MatchedBy(func(hash string) bool {
		return hash != ""
	})).Return(123, nil)

	userID, err := service.Register(context.Background(), login, password)
	assert.NoError(t, err)
	assert.Equal(t, int64(123), userID)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "login too short", login: "ab", password: "Testpassword123"},
		{name: "password too short", login: "testuser", password: "Tp1"},
		{name: "password without digit", login: "testuser", password: "Testpassword"},
		{name: "password without upper", login: "testuser", password: "testpassword123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Register(context.Background(), tt.login, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "testuser", mock.AnythingOfType("string")).
		Return(0, errors.New("database error"))

	_, err := service.Register(context.Background(), "testuser", "Testpassword123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	login := "testuser"
	password := "Testpassword123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	u := User{
		ID:       123,
		Login:    login,
		Password: string(hash),
	}

	mockRepo.On("FindByLogin", mock.Anything, login).Return(u, nil)

	authUser, err := service.Authenticate(context.Background(), login, password)
	assert.NoError(t, err)
	assert.Equal(t, u, authUser)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByLogin", mock.Anything, "nonexistent").
		Return(User{}, errors.New("user not found"))

	_, err := service.Authenticate(context.Background(), "nonexistent", "Testpassword123")
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_InvalidPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	login := "testuser"

	hash, err := bcrypt.GenerateFromPassword([]byte("Correctpassword1"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.On("FindByLogin", mock.Anything, login).
		Return(User{ID: 1, Login: login, Password: string(hash)}, nil)

	_, err = service.Authenticate(context.Background(), login, "Wrongpassword1")
	assert.ErrorIs(t, err, ErrInvalidAuth)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_InvalidHash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	login := "testuser"

	// Not a bcrypt hash at all.
	mockRepo.On("FindByLogin", mock.Anything, login).
		Return(User{ID: 1, Login: login, Password: "invalidhash"}, nil)

	_, err := service.Authenticate(context.Background(), login, "Testpassword123")
	assert.ErrorIs(t, err, ErrInvalidAuth)

	mockRepo.AssertExpectations(t)
}
