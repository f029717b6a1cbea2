package identitymock

import (
	"context"

	domain "fieldsight-backend/internal/domain/identity"
)

// Repo is a function-backed mock that satisfies domain.Repository. Nil
// getters report not-found, which matches a store with no rows; nil
// writers are no-ops.
type Repo struct {
	CreateUserFn          func(ctx context.Context, u *domain.User) error
	GetUserByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	GetUserByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	ListUsersFn           func(ctx context.Context) ([]domain.User, error)
	DeleteUserFn          func(ctx context.Context, userID string) error
	CreateRoleFn          func(ctx context.Context, ra *domain.RoleAssignment) error
	RolesByUserIDFn       func(ctx context.Context, userID string) ([]domain.RoleAssignment, error)
	ListRolesFn           func(ctx context.Context) ([]domain.RoleAssignment, error)
	DeleteRolesByUserIDFn func(ctx context.Context, userID string) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetUserByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserByUserIDFn != nil {
		return m.GetUserByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, nil
}

func (m *Repo) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	return nil
}

func (m *Repo) CreateRole(ctx context.Context, ra *domain.RoleAssignment) error {
	if m.CreateRoleFn != nil {
		return m.CreateRoleFn(ctx, ra)
	}
	return nil
}

func (m *Repo) RolesByUserID(ctx context.Context, userID string) ([]domain.RoleAssignment, error) {
	if m.RolesByUserIDFn != nil {
		return m.RolesByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListRoles(ctx context.Context) ([]domain.RoleAssignment, error) {
	if m.ListRolesFn != nil {
		return m.ListRolesFn(ctx)
	}
	return nil, nil
}

func (m *Repo) DeleteRolesByUserID(ctx context.Context, userID string) error {
	if m.DeleteRolesByUserIDFn != nil {
		return m.DeleteRolesByUserIDFn(ctx, userID)
	}
	return nil
}
