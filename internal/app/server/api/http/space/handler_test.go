package space

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"boxmate/internal/domain/space"
)

// MockService is a mock implementation of the space.Servicer interface for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]space.Space, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]space.Space), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, sp space.Space) (space.Space, error) {
	args := m.Called(ctx, sp)
	return args.Get(0).(space.Space), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, patch space.Patch) (space.Space, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(space.Space), args.Error(1)
}

func TestHandler_list(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService, slog.Default(), huma.Middlewares{})

	spaces := []space.Space{{ID: "garage", Alt: "Garage"}}
	mockService.On("List", mock.Anything).Return(spaces, nil)

	output, err := handler.list(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, spaces, output.Body)

	mockService.AssertExpectations(t)
}

func TestHandler_list_Empty(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService, slog.Default(), huma.Middlewares{})

	mockService.On("List", mock.Anything).Return(nil, nil)

	output, err := handler.list(context.Background(), nil)
	assert.NoError(t, err)
	// nil превращается в пустой срез, чтобы клиент получил []
	assert.NotNil(t, output.Body)
	assert.Empty(t, output.Body)
}

func TestHandler_create(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService, slog.Default(), huma.Middlewares{})

	sp := space.Space{ID: "garage", Image: "/icons/garage.svg", Alt: "Garage"}
	mockService.On("Create", mock.Anything, sp).Return(sp, nil)

	output, err := handler.create(context.Background(), &createInput{
		Body: createRequest{ID: "garage", Image: "/icons/garage.svg", Alt: "Garage"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 201, output.Status)
	assert.Equal(t, sp, output.Body)

	mockService.AssertExpectations(t)
}

func TestHandler_create_Duplicate(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService, slog.Default(), huma.Middlewares{})

	mockService.On("Create", mock.Anything, mock.Anything).Return(space.Space{}, space.ErrAlreadyExists)

	_, err := handler.create(context.Background(), &createInput{
		Body: createRequest{ID: "garage"},
	})
	assert.Error(t, err)

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.GetStatus())
}

func TestHandler_patch(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService, slog.Default(), huma.Middlewares{})

	image := "/icons/new.svg"
	mockService.On("Update", mock.Anything, "garage", space.Patch{Image: &image}).
		Return(space.Space{ID: "garage", Image: image}, nil)

	output, err := handler.patch(context.Background(), &patchInput{
		ID:   "garage",
		Body: patchRequest{Image: &image},
	})
	assert.NoError(t, err)
	assert.Equal(t, image, output.Body.Image)

	mockService.AssertExpectations(t)
}

func TestHandler_patch_NotFound(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService, slog.Default(), huma.Middlewares{})

	mockService.On("Update", mock.Anything, "missing", mock.Anything).
		Return(space.Space{}, space.ErrNotFound)

	_, err := handler.patch(context.Background(), &patchInput{ID: "missing"})
	assert.Error(t, err)

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}
