package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/orientwatch/backend/internal/domain"
)

// Notifier delivers best-effort notifications about new bookings and orders.
type Notifier interface {
	BookingCreated(b *domain.Booking) error
	OrderCreated(o *domain.Order) error
}

// createRetries bounds how often a creator retries after the unique index
// rejects a generated code that raced another insert.
const createRetries = 3

type OrderUC struct {
	Orders   domain.OrderRepo
	Notifier Notifier
}

func (uc *OrderUC) Create(ctx context.Context, o *domain.Order) error {
	if o.Subtotal < 0 || o.Shipping < 0 {
		return fmt.Errorf("%w: negative amount", domain.ErrInvalidInput)
	}
	if math.Abs(o.Total-(o.Subtotal+o.Shipping)) > 0.005 {
		return fmt.Errorf("%w: total must equal subtotal + shipping", domain.ErrInvalidInput)
	}
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}

	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		number, err := GenerateCode(ctx, orderCodePrefix, uc.Orders.NumberExists)
		if err != nil {
			return err
		}
		o.OrderNumber = number
		lastErr = uc.Orders.Create(ctx, o)
		if lastErr == nil {
			if uc.Notifier != nil {
				if err := uc.Notifier.OrderCreated(o); err != nil {
					log.Warn().Err(err).Str("order", o.OrderNumber).Msg("order notification failed")
				}
			}
			return nil
		}
		if !errors.Is(lastErr, domain.ErrConflict) {
			return lastErr
		}
	}
	return lastErr
}

func (uc *OrderUC) Get(ctx context.Context, id uint) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

func (uc *OrderUC) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, domain.Pagination, error) {
	f.Page = domain.ClampPage(f.Page)
	f.Limit = domain.ClampLimit(f.Limit)
	list, total, err := uc.Orders.List(ctx, f)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return list, domain.NewPagination(f.Page, f.Limit, total), nil
}

func (uc *OrderUC) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidInput, status)
	}
	return uc.Orders.UpdateStatus(ctx, id, status)
}
