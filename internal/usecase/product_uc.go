package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/orientwatch/backend/internal/domain"
)

type ProductUC struct {
	Products domain.ProductRepo
}

func (uc *ProductUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, domain.Pagination, error) {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return nil, domain.Pagination{}, fmt.Errorf("%w: negative minPrice", domain.ErrInvalidInput)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return nil, domain.Pagination{}, fmt.Errorf("%w: negative maxPrice", domain.ErrInvalidInput)
	}
	f.Page = domain.ClampPage(f.Page)
	f.Limit = domain.ClampLimit(f.Limit)

	list, total, err := uc.Products.List(ctx, f)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return list, domain.NewPagination(f.Page, f.Limit, total), nil
}

func (uc *ProductUC) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, id)
}

func (uc *ProductUC) Create(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price", domain.ErrInvalidInput)
	}
	if p.SKU != "" {
		taken, err := uc.Products.SKUExists(ctx, p.SKU)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: sku %s already exists", domain.ErrConflict, p.SKU)
		}
	}
	return uc.Products.Create(ctx, p)
}

func (uc *ProductUC) Update(ctx context.Context, id uint, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: negative price", domain.ErrInvalidInput)
	}
	return uc.Products.Update(ctx, id, patch)
}

func (uc *ProductUC) Delete(ctx context.Context, id uint) error {
	return uc.Products.Delete(ctx, id)
}
