package inspectionmock

import (
	"context"

	domain "fieldsight-backend/internal/domain/inspection"
	"fieldsight-backend/internal/listing"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled getters report
// not-found so ownership checks fail closed.
type Repo struct {
	ListFn          func(ctx context.Context, q listing.Query) ([]domain.Report, error)
	GetByReportIDFn func(ctx context.Context, reportID string) (*domain.Report, error)
	CreateFn        func(ctx context.Context, r *domain.Report) error
	UpdateFn        func(ctx context.Context, scope listing.Scope, ownerID string, r *domain.Report) error
	DeleteFn        func(ctx context.Context, reportID string) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) List(ctx context.Context, q listing.Query) ([]domain.Report, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, nil
}

func (m *Repo) GetByReportID(ctx context.Context, reportID string) (*domain.Report, error) {
	if m.GetByReportIDFn != nil {
		return m.GetByReportIDFn(ctx, reportID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Create(ctx context.Context, r *domain.Report) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Update(ctx context.Context, scope listing.Scope, ownerID string, r *domain.Report) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, scope, ownerID, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, reportID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, reportID)
	}
	return nil
}
