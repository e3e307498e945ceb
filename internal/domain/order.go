package domain

import (
	"context"
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CustomerData, Items and DeliveryAddress are opaque JSON blobs: the store
// round-trips them as serialized text without interpreting their shape.
type Order struct {
	ID              uint            `gorm:"primaryKey"`
	OrderNumber     string          `gorm:"size:40;not null;uniqueIndex"`
	UserID          *uint           `gorm:"index"`
	CustomerData    json.RawMessage `gorm:"type:text;serializer:json"`
	Items           json.RawMessage `gorm:"type:text;serializer:json"`
	Subtotal        float64         `gorm:"type:decimal(12,2);not null"`
	Shipping        float64         `gorm:"type:decimal(12,2);default:0"`
	Total           float64         `gorm:"type:decimal(12,2);not null"`
	Status          OrderStatus     `gorm:"size:30;index;default:pending"`
	PaymentMethod   string          `gorm:"size:40"`
	DeliveryMethod  string          `gorm:"size:40"`
	DeliveryAddress json.RawMessage `gorm:"type:text;serializer:json"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderFilter struct {
	Status string
	Page   int
	Limit  int
}

type OrderRepo interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, f OrderFilter) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status OrderStatus) (*Order, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}
