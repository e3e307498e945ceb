package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/orientwatch/backend/internal/domain"
)

type CollectionRepo struct{ db *gorm.DB }

func NewCollectionRepo(db *gorm.DB) *CollectionRepo { return &CollectionRepo{db: db} }

func (r *CollectionRepo) Create(ctx context.Context, c *domain.Collection) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *CollectionRepo) FindByID(ctx context.Context, id string) (*domain.Collection, error) {
	var c domain.Collection
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CollectionRepo) ListActive(ctx context.Context) ([]domain.Collection, error) {
	var list []domain.Collection
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("number asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CollectionRepo) Update(ctx context.Context, id string, patch domain.CollectionPatch) (*domain.Collection, error) {
	var c domain.Collection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Image != nil {
			c.Image = *patch.Image
		}
		if patch.Number != nil {
			c.Number = *patch.Number
		}
		if patch.Active != nil {
			c.Active = *patch.Active
		}
		return translate(tx.Save(&c).Error)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CollectionRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Collection{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
