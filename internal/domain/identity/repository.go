package identity

import "context"

type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUserID(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, userID string) error

	CreateRole(ctx context.Context, ra *RoleAssignment) error
	RolesByUserID(ctx context.Context, userID string) ([]RoleAssignment, error)
	ListRoles(ctx context.Context) ([]RoleAssignment, error)
	DeleteRolesByUserID(ctx context.Context, userID string) error
}
