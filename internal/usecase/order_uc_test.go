package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientwatch/backend/internal/adapters/repo/postgres"
	"github.com/orientwatch/backend/internal/domain"
	"github.com/orientwatch/backend/internal/usecase"
)

func TestOrderCreateRejectsMismatchedTotal(t *testing.T) {
	uc := &usecase.OrderUC{Orders: postgres.NewOrderRepo(newDB(t))}

	o := &domain.Order{Subtotal: 100, Shipping: 10, Total: 120}
	err := uc.Create(context.Background(), o)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreateToleratesRoundingNoise(t *testing.T) {
	uc := &usecase.OrderUC{Orders: postgres.NewOrderRepo(newDB(t))}

	o := &domain.Order{Subtotal: 0.1, Shipping: 0.2, Total: 0.3}
	require.NoError(t, uc.Create(context.Background(), o))
}

func TestOrderCreateAssignsNumberAndStatus(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := &usecase.OrderUC{Orders: postgres.NewOrderRepo(newDB(t)), Notifier: notifier}

	o := &domain.Order{
		CustomerData: json.RawMessage(`{"name":"Aziz"}`),
		Items:        json.RawMessage(`[{"productId":"1","qty":1}]`),
		Subtotal:     280,
		Shipping:     20,
		Total:        300,
	}
	require.NoError(t, uc.Create(context.Background(), o))

	assert.True(t, strings.HasPrefix(o.OrderNumber, "ORD"))
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.Equal(t, 1, notifier.orders)
}

func TestOrderUpdateStatusRejectsUnknown(t *testing.T) {
	uc := &usecase.OrderUC{Orders: postgres.NewOrderRepo(newDB(t))}

	_, err := uc.UpdateStatus(context.Background(), 1, domain.OrderStatus("shipped"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
