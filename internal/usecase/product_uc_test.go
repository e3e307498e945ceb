package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientwatch/backend/internal/adapters/repo/postgres"
	"github.com/orientwatch/backend/internal/domain"
	"github.com/orientwatch/backend/internal/usecase"
)

func TestProductCreateDuplicateSKU(t *testing.T) {
	uc := &usecase.ProductUC{Products: postgres.NewProductRepo(newDB(t))}
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &domain.Product{Name: "Bambino", Price: 280, SKU: "RA-AC0M02S"}))
	err := uc.Create(ctx, &domain.Product{Name: "Other", Price: 300, SKU: "RA-AC0M02S"})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductCreateValidation(t *testing.T) {
	uc := &usecase.ProductUC{Products: postgres.NewProductRepo(newDB(t))}
	ctx := context.Background()

	require.ErrorIs(t, uc.Create(ctx, &domain.Product{Name: "  ", Price: 10}), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.Create(ctx, &domain.Product{Name: "X", Price: -1}), domain.ErrInvalidInput)
}

func TestProductListClampsPaging(t *testing.T) {
	uc := &usecase.ProductUC{Products: postgres.NewProductRepo(newDB(t))}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, uc.Create(ctx, &domain.Product{Name: "W", Price: 1}))
	}

	_, pg, err := uc.List(ctx, domain.ProductFilter{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, domain.DefaultPageLimit, pg.Limit)

	_, pg, err = uc.List(ctx, domain.ProductFilter{Page: 1, Limit: 10000})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxPageLimit, pg.Limit)
}

func TestProductListRejectsNegativePriceBounds(t *testing.T) {
	uc := &usecase.ProductUC{Products: postgres.NewProductRepo(newDB(t))}

	bad := -1.0
	_, _, err := uc.List(context.Background(), domain.ProductFilter{MinPrice: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
