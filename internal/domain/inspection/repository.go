package inspection

import (
	"context"

	"fieldsight-backend/internal/listing"
)

type Repository interface {
	List(ctx context.Context, q listing.Query) ([]Report, error)
	GetByReportID(ctx context.Context, reportID string) (*Report, error)
	Create(ctx context.Context, r *Report) error
	// Update persists the given fields of the report identified by
	// report_id, additionally constrained to the owner when the query
	// scope is own. It reports ErrNotFound when no row matched.
	Update(ctx context.Context, scope listing.Scope, ownerID string, r *Report) error
	Delete(ctx context.Context, reportID string) error
}
