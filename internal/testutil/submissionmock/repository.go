package submissionmock

import (
	"context"

	domain "fieldsight-backend/internal/domain/submission"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, s *domain.Submission) error
	GetBySubmissionIDFn func(ctx context.Context, submissionID string) (*domain.Submission, error)
	ListFn              func(ctx context.Context) ([]domain.Submission, error)
	SaveFn              func(ctx context.Context, s *domain.Submission) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Submission, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Submission) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
