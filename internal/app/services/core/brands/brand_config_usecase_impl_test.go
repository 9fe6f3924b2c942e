package brands

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBrandConfigRepository struct {
	mock.Mock
}

func (m *mockBrandConfigRepository) FindBySlug(ctx context.Context, slug string) (*models.BrandConfig, error) {
	args := m.Called(ctx, slug)
	brand, _ := args.Get(0).(*models.BrandConfig)
	return brand, args.Error(1)
}

func TestBrandConfigUsecase_GetBrandConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes Slug", func(t *testing.T) {
		repository := &mockBrandConfigRepository{}
		repository.On("FindBySlug", ctx, "acme-health").Return(&models.BrandConfig{Slug: "acme-health", DisplayName: "Acme Health"}, nil)

		brand, err := NewBrandConfigUsecase(repository, zap.NewNop()).GetBrandConfig(ctx, " Acme-Health ")
		require.NoError(t, err)
		assert.Equal(t, "Acme Health", brand.DisplayName)
	})

	t.Run("Unknown Slug Is Not Found", func(t *testing.T) {
		repository := &mockBrandConfigRepository{}
		repository.On("FindBySlug", ctx, "nope").Return(nil, nil)

		_, err := NewBrandConfigUsecase(repository, zap.NewNop()).GetBrandConfig(ctx, "nope")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
	})
}
