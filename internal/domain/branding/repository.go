package branding

import "context"

type Repository interface {
	Get(ctx context.Context) (*HeaderDetails, error)
	// Upsert creates the singleton on first write and updates it in
	// place afterwards.
	Upsert(ctx context.Context, h *HeaderDetails) error
}
