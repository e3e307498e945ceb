package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientwatch/backend/internal/domain"
)

func TestOrderBlobFieldsRoundTrip(t *testing.T) {
	repo := NewOrderRepo(newTestDB(t))
	ctx := context.Background()

	customer := json.RawMessage(`{"name":"Aziz","phone":"+998901234567","address":{"city":"Tashkent","street":"Amir Temur 1"}}`)
	items := json.RawMessage(`[{"productId":"1","qty":2,"price":280},{"productId":"3","qty":1,"price":350}]`)

	o := &domain.Order{
		OrderNumber:  "ORD202608290001",
		CustomerData: customer,
		Items:        items,
		Subtotal:     910,
		Shipping:     15,
		Total:        925,
		Status:       domain.OrderStatusPending,
	}
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(customer), string(got.CustomerData))
	assert.JSONEq(t, string(items), string(got.Items))
	assert.Equal(t, 925.0, got.Total)
}

func TestOrderNumberUnique(t *testing.T) {
	repo := NewOrderRepo(newTestDB(t))
	ctx := context.Background()

	first := &domain.Order{OrderNumber: "ORD202608290002", Subtotal: 1, Total: 1, Status: domain.OrderStatusPending}
	require.NoError(t, repo.Create(ctx, first))

	taken, err := repo.NumberExists(ctx, "ORD202608290002")
	require.NoError(t, err)
	assert.True(t, taken)

	dup := &domain.Order{OrderNumber: "ORD202608290002", Subtotal: 1, Total: 1, Status: domain.OrderStatusPending}
	require.ErrorIs(t, repo.Create(ctx, dup), domain.ErrConflict)
}

func TestOrderUpdateStatus(t *testing.T) {
	repo := NewOrderRepo(newTestDB(t))
	ctx := context.Background()

	o := &domain.Order{OrderNumber: "ORD202608290003", Subtotal: 1, Total: 1, Status: domain.OrderStatusPending}
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.UpdateStatus(ctx, o.ID, domain.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, got.Status)

	_, err = repo.UpdateStatus(ctx, 424242, domain.OrderStatusCompleted)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
