package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/orientwatch/backend/internal/domain"
)

type ContentUC struct {
	Content  domain.ContentRepo
	Products domain.ProductRepo
}

// Hero returns the stored hero copy, or the built-in default when no row has
// ever been written. Absence is not an error.
func (uc *ContentUC) Hero(ctx context.Context) (*domain.HeroContent, error) {
	h, err := uc.Content.GetHero(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultHero()
		return &def, nil
	}
	return h, err
}

func (uc *ContentUC) UpdateHero(ctx context.Context, h *domain.HeroContent) error {
	return uc.Content.SaveHero(ctx, h)
}

func (uc *ContentUC) PromoBanner(ctx context.Context) (*domain.PromoBanner, error) {
	b, err := uc.Content.GetPromoBanner(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultPromoBanner()
		return &def, nil
	}
	return b, err
}

func (uc *ContentUC) UpdatePromoBanner(ctx context.Context, b *domain.PromoBanner) error {
	return uc.Content.SavePromoBanner(ctx, b)
}

func (uc *ContentUC) Heritage(ctx context.Context) (*domain.HeritageSection, error) {
	h, err := uc.Content.GetHeritage(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultHeritage()
		return &def, nil
	}
	return h, err
}

func (uc *ContentUC) UpdateHeritage(ctx context.Context, h *domain.HeritageSection) error {
	return uc.Content.SaveHeritage(ctx, h)
}

// FeaturedWatches joins each association to its product. Entries whose
// product has been deleted are skipped so the storefront list never breaks
// on a stale reference.
func (uc *ContentUC) FeaturedWatches(ctx context.Context) ([]domain.FeaturedItem, error) {
	set, err := uc.Content.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.FeaturedItem, 0, len(set))
	for _, fw := range set {
		p, err := uc.Products.FindByID(ctx, fw.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, domain.FeaturedItem{
			ProductID:  p.ID,
			Name:       p.Name,
			Collection: p.Collection,
			Price:      p.Price,
			Image:      p.Image,
			IsNew:      fw.IsNew,
		})
	}
	return items, nil
}

func (uc *ContentUC) ReplaceFeaturedWatches(ctx context.Context, set []domain.FeaturedWatch) error {
	for _, fw := range set {
		if fw.ProductID == 0 {
			return fmt.Errorf("%w: featured entry without product id", domain.ErrInvalidInput)
		}
	}
	return uc.Content.ReplaceFeatured(ctx, set)
}
