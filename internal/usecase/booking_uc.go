package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/orientwatch/backend/internal/domain"
)

type BookingUC struct {
	Bookings domain.BookingRepo
	Notifier Notifier
}

func (uc *BookingUC) Create(ctx context.Context, b *domain.Booking) error {
	if strings.TrimSpace(b.Name) == "" || strings.TrimSpace(b.Phone) == "" {
		return fmt.Errorf("%w: name and phone required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(b.Boutique) == "" {
		b.Boutique = domain.DefaultBoutique
	}
	b.Status = domain.BookingStatusPending

	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		number, err := GenerateCode(ctx, bookingCodePrefix, uc.Bookings.NumberExists)
		if err != nil {
			return err
		}
		b.BookingNumber = number
		lastErr = uc.Bookings.Create(ctx, b)
		if lastErr == nil {
			if uc.Notifier != nil {
				if err := uc.Notifier.BookingCreated(b); err != nil {
					log.Warn().Err(err).Str("booking", b.BookingNumber).Msg("booking notification failed")
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

func (uc *BookingUC) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	return uc.Bookings.FindByID(ctx, id)
}

func (uc *BookingUC) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, domain.Pagination, error) {
	f.Page = domain.ClampPage(f.Page)
	f.Limit = domain.ClampLimit(f.Limit)
	list, total, err := uc.Bookings.List(ctx, f)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return list, domain.NewPagination(f.Page, f.Limit, total), nil
}

func (uc *BookingUC) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrInvalidInput, status)
	}
	return uc.Bookings.UpdateStatus(ctx, id, status)
}

func (uc *BookingUC) Delete(ctx context.Context, id uint) error {
	return uc.Bookings.Delete(ctx, id)
}

func (uc *BookingUC) Stats(ctx context.Context) (*domain.BookingStats, error) {
	return uc.Bookings.Stats(ctx)
}
