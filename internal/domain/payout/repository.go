package payout

import (
	"context"

	"fieldsight-backend/internal/listing"
)

type Repository interface {
	List(ctx context.Context, q listing.Query) ([]Report, error)
	GetByReportID(ctx context.Context, reportID string) (*Report, error)
	Create(ctx context.Context, r *Report) error
	Update(ctx context.Context, scope listing.Scope, ownerID string, r *Report) error
	Delete(ctx context.Context, reportID string) error
}
