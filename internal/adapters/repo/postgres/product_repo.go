package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/orientwatch/backend/internal/domain"
)

// escapeLike neutralizes LIKE metacharacters so a search for a literal
// "%" or "_" matches only that character.
var escapeLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if f.Search != "" {
		q = q.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(f.Search)+"%")
	}
	if f.Collection != "" {
		q = q.Where("collection = ?", f.Collection)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := domain.ClampPage(f.Page)
	limit := domain.ClampLimit(f.Limit)
	offset := (page - 1) * limit

	var list []domain.Product
	if err := q.Order("id asc").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ProductRepo) Update(ctx context.Context, id uint, patch domain.ProductPatch) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		applyProductPatch(&p, patch)
		return translate(tx.Save(&p).Error)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func applyProductPatch(p *domain.Product, patch domain.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Collection != nil {
		p.Collection = *patch.Collection
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Features != nil {
		p.Features = *patch.Features
	}
	if patch.Specs != nil {
		p.Specs = *patch.Specs
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
}

func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) SKUExists(ctx context.Context, sku string) (bool, error) {
	if sku == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("sku = ?", sku).Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductRepo) CountByCollection(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("collection = ?", name).Count(&count).Error
	return count, err
}
