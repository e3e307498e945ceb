package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/orientwatch/backend/internal/domain"
)

// translate maps driver errors onto the domain taxonomy. Unique-index
// violations become ErrConflict so callers can retry code generation.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique") {
		return domain.ErrConflict
	}
	return err
}

// Migrate creates the schema and the uniqueness guards that back the
// collision-safe identifier contract.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Product{}, &domain.Collection{}, &domain.Order{}, &domain.Booking{},
		&domain.HeroContent{}, &domain.PromoBanner{}, &domain.HeritageSection{}, &domain.FeaturedWatch{},
	); err != nil {
		return err
	}

	// SKU is optional: the unique guard only applies to non-empty values.
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku_unique ON products (sku) WHERE sku IS NOT NULL AND sku <> ''").Error; err != nil {
		return err
	}
	_ = db.Exec("CREATE INDEX IF NOT EXISTS idx_products_collection ON products (collection)").Error
	_ = db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)").Error
	_ = db.Exec("CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)").Error

	return nil
}
