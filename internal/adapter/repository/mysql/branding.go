package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "fieldsight-backend/internal/domain/branding"
)

type BrandingRepository struct{ db *gorm.DB }

func NewBrandingRepository(db *gorm.DB) *BrandingRepository {
	return &BrandingRepository{db: db}
}

func (r *BrandingRepository) Get(ctx context.Context) (*domain.HeaderDetails, error) {
	var out domain.HeaderDetails
	res := r.db.WithContext(ctx).First(&out, 1)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BrandingRepository) Upsert(ctx context.Context, h *domain.HeaderDetails) error {
	h.ID = 1
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(h).Error
}
