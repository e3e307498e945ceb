package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/orientwatch/backend/internal/domain"
)

type CollectionUC struct {
	Collections domain.CollectionRepo
	Products    domain.ProductRepo
}

// List returns active collections with their live watch counts. The count is
// computed per read against the product rows, never stored.
func (uc *CollectionUC) List(ctx context.Context) ([]domain.Collection, error) {
	list, err := uc.Collections.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		n, err := uc.Products.CountByCollection(ctx, list[i].Name)
		if err != nil {
			return nil, err
		}
		list[i].WatchCount = n
	}
	return list, nil
}

func (uc *CollectionUC) Get(ctx context.Context, id string) (*domain.Collection, error) {
	c, err := uc.Collections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := uc.Products.CountByCollection(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	c.WatchCount = n
	return c, nil
}

// ListProducts pages through the products whose collection field equals the
// collection's display name (the join key is the name, not the id).
func (uc *CollectionUC) ListProducts(ctx context.Context, id string, page, limit int) ([]domain.Product, domain.Pagination, error) {
	c, err := uc.Collections.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	page = domain.ClampPage(page)
	limit = domain.ClampLimit(limit)
	list, total, err := uc.Products.List(ctx, domain.ProductFilter{Collection: c.Name, Page: page, Limit: limit})
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return list, domain.NewPagination(page, limit, total), nil
}

func (uc *CollectionUC) Create(ctx context.Context, c *domain.Collection) error {
	if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: id and name required", domain.ErrInvalidInput)
	}
	if _, err := uc.Collections.FindByID(ctx, c.ID); err == nil {
		return fmt.Errorf("%w: collection %s already exists", domain.ErrConflict, c.ID)
	}
	return uc.Collections.Create(ctx, c)
}

func (uc *CollectionUC) Update(ctx context.Context, id string, patch domain.CollectionPatch) (*domain.Collection, error) {
	return uc.Collections.Update(ctx, id, patch)
}

func (uc *CollectionUC) Delete(ctx context.Context, id string) error {
	return uc.Collections.Delete(ctx, id)
}
