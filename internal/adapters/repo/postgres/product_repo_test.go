package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientwatch/backend/internal/domain"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func intPtr(i int) *int             { return &i }
func boolPtr(b bool) *bool          { return &b }
func slicePtr(s []string) *[]string { return &s }

func seedProduct(t *testing.T, repo *ProductRepo) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:          "Bambino 38",
		Collection:    "Classic",
		Price:         289.99,
		Image:         "/uploads/bambino.jpg",
		Images:        []string{"/uploads/bambino.jpg", "/uploads/bambino-side.jpg"},
		Description:   "Automatic dress watch",
		Features:      []string{"Automatic", "Domed crystal"},
		Specs:         map[string]string{"movement": "F6724", "water": "3 bar"},
		InStock:       true,
		StockQuantity: 4,
		SKU:           "RA-AC0M02S",
	}
	require.NoError(t, repo.Create(context.Background(), p))
	require.NotZero(t, p.ID)
	return p
}

func TestProductPartialUpdateKeepsOmittedFields(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	p := seedProduct(t, repo)

	got, err := repo.Update(context.Background(), p.ID, domain.ProductPatch{Price: floatPtr(310)})
	require.NoError(t, err)

	assert.Equal(t, 310.0, got.Price)
	assert.Equal(t, "Bambino 38", got.Name)
	assert.Equal(t, "Classic", got.Collection)
	assert.Equal(t, []string{"Automatic", "Domed crystal"}, got.Features)
	assert.Equal(t, map[string]string{"movement": "F6724", "water": "3 bar"}, got.Specs)
	assert.Equal(t, 4, got.StockQuantity)
	assert.Equal(t, "RA-AC0M02S", got.SKU)
}

func TestProductUpdateRefreshesTimestamp(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	p := seedProduct(t, repo)
	created := p.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	got, err := repo.Update(context.Background(), p.ID, domain.ProductPatch{Name: strPtr("Bambino 38 v2")})
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(created))
}

func TestProductStructuredFieldsRoundTrip(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))

	cases := []struct {
		name     string
		images   []string
		features []string
		specs    map[string]string
	}{
		{"empty", []string{}, []string{}, map[string]string{}},
		{"single", []string{"/uploads/a.jpg"}, []string{"Sapphire"}, map[string]string{"case": "40mm"}},
		{"multi", []string{"/a.jpg", "/b.jpg", "/c.jpg"}, []string{"x", "y"}, map[string]string{"movement": "F6922", "lume": "hands + indices", "strap": "leather"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &domain.Product{Name: "RT " + tc.name, Collection: "Sport", Price: 1, Images: tc.images, Features: tc.features, Specs: tc.specs}
			require.NoError(t, repo.Create(context.Background(), p))

			got, err := repo.FindByID(context.Background(), p.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.images, got.Images)
			assert.Equal(t, tc.features, got.Features)
			assert.Equal(t, tc.specs, got.Specs)
		})
	}
}

func TestProductDuplicateSKURejectedByIndex(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	seedProduct(t, repo)

	dup := &domain.Product{Name: "Other", Collection: "Classic", Price: 10, SKU: "RA-AC0M02S"}
	err := repo.Create(context.Background(), dup)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductEmptySKUNotUnique(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	for i := 0; i < 2; i++ {
		p := &domain.Product{Name: "No SKU", Collection: "Classic", Price: 5}
		require.NoError(t, repo.Create(context.Background(), p))
	}
}

func TestProductSearchTreatsLikeMetacharsLiterally(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()

	seed := []domain.Product{
		{Name: "100% Sapphire", Collection: "Classic", Price: 200},
		{Name: "RA_X10", Collection: "Sport", Price: 150},
		{Name: "Mako 40", Collection: "Diver", Price: 350},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	list, total, err := repo.List(ctx, domain.ProductFilter{Search: "%", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "100% Sapphire", list[0].Name)

	list, total, err = repo.List(ctx, domain.ProductFilter{Search: "_", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "RA_X10", list[0].Name)
}

func TestProductCreateStoresOutOfStockVerbatim(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()

	p := &domain.Product{Name: "Sold Out", Collection: "Classic", Price: 99, InStock: false}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.InStock)
}

func TestProductDeleteNotFound(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	err := repo.Delete(context.Background(), 9999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductListFilters(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()

	seed := []domain.Product{
		{Name: "Bambino 38", Collection: "Classic", Price: 280},
		{Name: "Kamasu", Collection: "Diver", Price: 320},
		{Name: "Mako 40", Collection: "Diver", Price: 350},
		{Name: "Star Standard", Collection: "Star", Price: 780},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	list, total, err := repo.List(ctx, domain.ProductFilter{Search: "mAkO", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "Mako 40", list[0].Name)

	list, total, err = repo.List(ctx, domain.ProductFilter{Collection: "Diver", MinPrice: floatPtr(330), Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "Mako 40", list[0].Name)

	list, total, err = repo.List(ctx, domain.ProductFilter{MaxPrice: floatPtr(400), Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, list, 1)
}
