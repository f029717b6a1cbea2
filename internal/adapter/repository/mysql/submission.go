package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "fieldsight-backend/internal/domain/submission"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	var out domain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *SubmissionRepository) List(ctx context.Context) ([]domain.Submission, error) {
	var out []domain.Submission
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) Save(ctx context.Context, s *domain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}
