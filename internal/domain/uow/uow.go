package uow

import (
	"context"

	"fieldsight-backend/internal/domain/identity"
)

// Repos bundles the repositories that participate in one transaction.
type Repos struct {
	Identities identity.Repository
}

// UnitOfWork runs fn against transaction-bound repositories; the
// provisioning flow uses it so a user row and its role assignment commit
// or roll back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
