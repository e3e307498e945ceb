package domain

import (
	"context"
	"time"
)

// Collection is keyed by an externally assigned slug. Products reference a
// collection by its display Name, not its id: renaming a collection detaches
// previously associated products from by-id queries. Kept as-is from the
// original schema.
type Collection struct {
	ID          string `gorm:"primaryKey;size:120"`
	Name        string `gorm:"size:120;not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:255"`
	Number      string `gorm:"size:20"`
	Active      bool
	CreatedAt   time.Time

	// WatchCount is derived at read time, never stored.
	WatchCount int64 `gorm:"-"`
}

type CollectionPatch struct {
	Name        *string
	Description *string
	Image       *string
	Number      *string
	Active      *bool
}

type CollectionRepo interface {
	Create(ctx context.Context, c *Collection) error
	FindByID(ctx context.Context, id string) (*Collection, error)
	ListActive(ctx context.Context) ([]Collection, error)
	Update(ctx context.Context, id string, patch CollectionPatch) (*Collection, error)
	Delete(ctx context.Context, id string) error
}
