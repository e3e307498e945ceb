package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/orientwatch/backend/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BookingRepo) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingRepo) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := domain.ClampPage(f.Page)
	limit := domain.ClampLimit(f.Limit)

	var list []domain.Booking
	if err := q.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		b.Status = status
		return translate(tx.Save(&b).Error)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Booking{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Stats(ctx context.Context) (*domain.BookingStats, error) {
	stats := &domain.BookingStats{}
	if err := r.db.WithContext(ctx).Model(&domain.Booking{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type row struct {
		Status domain.BookingStatus
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, count(*) as n").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		switch rw.Status {
		case domain.BookingStatusPending:
			stats.Pending = rw.N
		case domain.BookingStatusConfirmed:
			stats.Confirmed = rw.N
		case domain.BookingStatusCompleted:
			stats.Completed = rw.N
		case domain.BookingStatusCancelled:
			stats.Cancelled = rw.N
		}
	}
	return stats, nil
}

func (r *BookingRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("booking_number = ?", number).Count(&count).Error
	return count > 0, err
}
