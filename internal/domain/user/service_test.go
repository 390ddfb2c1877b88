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

func (m *MockRepository) Create(ctx context.Context, username, email, passwordHash string) (int, error) {
	args := m.Called(ctx, username, email, passwordHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	username := "alice"
	email := "alice@example.com"
	password := "secret123"

	// We can't predict the exact hash, so check that Create is called with a non-empty one
	mockRepo.On("Create", mock.Anything, username, email, mock.MatchedBy(func(hash string) bool {
		return hash != ""
	})).Return(123, nil)

	u, err := service.Register(context.Background(), username, email, password)
	assert.NoError(t, err)
	assert.Equal(t, 123, u.ID)
	assert.Equal(t, username, u.Username)
	assert.Equal(t, email, u.Email)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	_, err := service.Register(context.Background(), "ab", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	mockRepo.On("Create", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
		Return(0, errors.New("database error"))

	_, err := service.Register(context.Background(), "alice", "alice@example.com", "secret123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	email := "alice@example.com"
	password := "secret123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := User{
		ID:       123,
		Username: "alice",
		Email:    email,
		Password: string(hash),
	}
	mockRepo.On("FindByEmail", mock.Anything, email).Return(stored, nil)

	u, err := service.Authenticate(context.Background(), email, password)
	assert.NoError(t, err)
	assert.Equal(t, 123, u.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(User{ID: 1, Password: string(hash)}, nil)

	_, err = service.Authenticate(context.Background(), "alice@example.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "missing@example.com").
		Return(User{}, errors.New("no rows"))

	_, err := service.Authenticate(context.Background(), "missing@example.com", "secret123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Authenticate_InvalidEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	_, err := service.Authenticate(context.Background(), "not-an-email", "secret123")
	assert.ErrorIs(t, err, ErrInvalidAuth)

	mockRepo.AssertNotCalled(t, "FindByEmail")
}
