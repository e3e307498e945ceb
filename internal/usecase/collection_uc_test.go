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

func TestCollectionWatchCountIsLive(t *testing.T) {
	db := newDB(t)
	products := postgres.NewProductRepo(db)
	uc := &usecase.CollectionUC{Collections: postgres.NewCollectionRepo(db), Products: products}
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &domain.Collection{ID: "classic", Name: "Classic", Active: true}))

	a := &domain.Product{Name: "Bambino 38", Collection: "Classic", Price: 280}
	b := &domain.Product{Name: "Sun & Moon", Collection: "Classic", Price: 540}
	require.NoError(t, products.Create(ctx, a))
	require.NoError(t, products.Create(ctx, b))

	got, err := uc.Get(ctx, "classic")
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.WatchCount)

	require.NoError(t, products.Delete(ctx, a.ID))

	got, err = uc.Get(ctx, "classic")
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.WatchCount)
}

func TestCollectionProductsJoinByName(t *testing.T) {
	db := newDB(t)
	products := postgres.NewProductRepo(db)
	uc := &usecase.CollectionUC{Collections: postgres.NewCollectionRepo(db), Products: products}
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &domain.Collection{ID: "diver", Name: "Diver", Active: true}))
	require.NoError(t, products.Create(ctx, &domain.Product{Name: "Kamasu", Collection: "Diver", Price: 320}))
	require.NoError(t, products.Create(ctx, &domain.Product{Name: "Bambino", Collection: "Classic", Price: 280}))

	list, pg, err := uc.ListProducts(ctx, "diver", 1, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kamasu", list[0].Name)
	assert.EqualValues(t, 1, pg.Total)
}

func TestCollectionCreateDuplicateID(t *testing.T) {
	uc := &usecase.CollectionUC{Collections: postgres.NewCollectionRepo(newDB(t)), Products: postgres.NewProductRepo(newDB(t))}
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &domain.Collection{ID: "star", Name: "Star", Active: true}))
	err := uc.Create(ctx, &domain.Collection{ID: "star", Name: "Star Again", Active: true})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestCollectionListOnlyActive(t *testing.T) {
	db := newDB(t)
	uc := &usecase.CollectionUC{Collections: postgres.NewCollectionRepo(db), Products: postgres.NewProductRepo(db)}
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &domain.Collection{ID: "classic", Name: "Classic", Active: true}))
	require.NoError(t, uc.Create(ctx, &domain.Collection{ID: "retired", Name: "Retired", Active: false}))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "classic", list[0].ID)
}
