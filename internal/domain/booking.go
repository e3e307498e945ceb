package domain

import (
	"context"
	"time"
)

// DefaultBoutique is applied when a booking arrives without a boutique.
const DefaultBoutique = "Orient Ташкент"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            uint          `gorm:"primaryKey"`
	BookingNumber string        `gorm:"size:40;not null;uniqueIndex"`
	Name          string        `gorm:"size:140;not null"`
	Phone         string        `gorm:"size:50;not null"`
	Email         string        `gorm:"size:140"`
	Date          string        `gorm:"size:20"`
	Time          string        `gorm:"size:20"`
	Message       string        `gorm:"type:text"`
	Boutique      string        `gorm:"size:120"`
	Status        BookingStatus `gorm:"size:30;index;default:pending"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingStats counts bookings by status.
type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type BookingFilter struct {
	Status string
	Page   int
	Limit  int
}

type BookingRepo interface {
	Create(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id uint) (*Booking, error)
	List(ctx context.Context, f BookingFilter) ([]Booking, int64, error)
	UpdateStatus(ctx context.Context, id uint, status BookingStatus) (*Booking, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*BookingStats, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}
