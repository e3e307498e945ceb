package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orientwatch/backend/internal/domain"
)

// ContentRepo persists the marketing singletons and the featured-watches set.
type ContentRepo struct{ db *gorm.DB }

func NewContentRepo(db *gorm.DB) *ContentRepo { return &ContentRepo{db: db} }

// singleton rows are upserted on their fixed id so there is never a second row.
func upsertSingleton(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	})
}

func (r *ContentRepo) GetHero(ctx context.Context) (*domain.HeroContent, error) {
	var h domain.HeroContent
	if err := r.db.WithContext(ctx).First(&h, "id = ?", domain.SingletonID).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (r *ContentRepo) SaveHero(ctx context.Context, h *domain.HeroContent) error {
	h.ID = domain.SingletonID
	return translate(upsertSingleton(r.db.WithContext(ctx)).Create(h).Error)
}

func (r *ContentRepo) GetPromoBanner(ctx context.Context) (*domain.PromoBanner, error) {
	var b domain.PromoBanner
	if err := r.db.WithContext(ctx).First(&b, "id = ?", domain.SingletonID).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *ContentRepo) SavePromoBanner(ctx context.Context, b *domain.PromoBanner) error {
	b.ID = domain.SingletonID
	return translate(upsertSingleton(r.db.WithContext(ctx)).Create(b).Error)
}

func (r *ContentRepo) GetHeritage(ctx context.Context) (*domain.HeritageSection, error) {
	var h domain.HeritageSection
	if err := r.db.WithContext(ctx).First(&h, "id = ?", domain.SingletonID).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (r *ContentRepo) SaveHeritage(ctx context.Context, h *domain.HeritageSection) error {
	h.ID = domain.SingletonID
	return translate(upsertSingleton(r.db.WithContext(ctx)).Create(h).Error)
}

func (r *ContentRepo) ListFeatured(ctx context.Context) ([]domain.FeaturedWatch, error) {
	var list []domain.FeaturedWatch
	if err := r.db.WithContext(ctx).Order("order_num asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ReplaceFeatured swaps the whole set in one transaction. Concurrent calls
// are last-write-wins.
func (r *ContentRepo) ReplaceFeatured(ctx context.Context, set []domain.FeaturedWatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.FeaturedWatch{}).Error; err != nil {
			return err
		}
		if len(set) == 0 {
			return nil
		}
		for i := range set {
			set[i].ID = 0
		}
		return tx.Create(&set).Error
	})
}
