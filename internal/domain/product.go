package domain

import (
	"context"
	"time"
)

type Product struct {
	ID            uint              `gorm:"primaryKey"`
	Name          string            `gorm:"size:180;not null;index"`
	Collection    string            `gorm:"size:120;not null;index"`
	Price         float64           `gorm:"type:decimal(12,2);not null"`
	Image         string            `gorm:"size:255"`
	Images        []string          `gorm:"type:text;serializer:json"`
	Description   string            `gorm:"type:text"`
	Features      []string          `gorm:"type:text;serializer:json"`
	Specs         map[string]string `gorm:"type:text;serializer:json"`
	InStock       bool
	StockQuantity int               `gorm:"default:0"`
	SKU           string            `gorm:"size:100;column:sku"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductPatch carries a partial update: nil fields are left untouched.
type ProductPatch struct {
	Name          *string
	Collection    *string
	Price         *float64
	Image         *string
	Images        *[]string
	Description   *string
	Features      *[]string
	Specs         *map[string]string
	InStock       *bool
	StockQuantity *int
	SKU           *string
}

// ProductFilter composes with logical AND. Search is a case-insensitive
// substring match on the product name.
type ProductFilter struct {
	Search     string
	Collection string
	MinPrice   *float64
	MaxPrice   *float64
	Page       int
	Limit      int
}

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	Update(ctx context.Context, id uint, patch ProductPatch) (*Product, error)
	Delete(ctx context.Context, id uint) error
	SKUExists(ctx context.Context, sku string) (bool, error)
	CountByCollection(ctx context.Context, name string) (int64, error)
}
