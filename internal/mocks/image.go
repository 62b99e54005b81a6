package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-api/backend/internal/service"
)

var _ service.IImageService = (*MockImageService)(nil)

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	mock.Mock
}

// UploadRecipeImage mocks the UploadRecipeImage method
func (m *MockImageService) UploadRecipeImage(ctx context.Context, contentType string, size int64, body io.Reader) (string, error) {
	args := m.Called(ctx, contentType, size, body)
	return args.String(0), args.Error(1)
}
