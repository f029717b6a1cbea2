package provisioning

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldsight-backend/internal/domain/identity"
	"fieldsight-backend/internal/domain/uow"
	"fieldsight-backend/internal/testutil/identitymock"
	"fieldsight-backend/internal/testutil/uowmock"
)

func TestCreateUser_UserAndRoleInOneTx(t *testing.T) {
	var createdUser *identity.User
	var createdRole *identity.RoleAssignment

	identities := &identitymock.Repo{
		CreateUserFn: func(ctx context.Context, u *identity.User) error {
			createdUser = u
			return nil
		},
		CreateRoleFn: func(ctx context.Context, ra *identity.RoleAssignment) error {
			createdRole = ra
			return nil
		},
	}
	uc := NewUsecase(identities, uowmock.Passthrough(uow.Repos{Identities: identities}))

	user, err := uc.CreateUser(context.Background(), CreateUserInput{
		Email:    "agent@example.com",
		Password: "s3cret-pass",
		Role:     "agent",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if createdUser != user || len(user.UserID) != 32 {
		t.Fatalf("user: %+v", user)
	}
	if createdRole == nil || createdRole.UserID != user.UserID || createdRole.Role != identity.RoleAgent {
		t.Fatalf("role row: %+v", createdRole)
	}
	if user.PasswordHash == "s3cret-pass" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestCreateUser_InvalidRole(t *testing.T) {
	uc := NewUsecase(&identitymock.Repo{}, uowmock.New())
	_, err := uc.CreateUser(context.Background(), CreateUserInput{
		Email:    "x@example.com",
		Password: "s3cret-pass",
		Role:     "superuser",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("want ErrInvalidRole, got %v", err)
	}
}

func TestCreateUser_DuplicateEmailInsideTx(t *testing.T) {
	identities := &identitymock.Repo{
		GetUserByEmailFn: func(ctx context.Context, email string) (*identity.User, error) {
			return &identity.User{Email: email}, nil
		},
		CreateUserFn: func(ctx context.Context, u *identity.User) error {
			t.Fatal("CreateUser must not run for a duplicate email")
			return nil
		},
	}
	uc := NewUsecase(identities, uowmock.Passthrough(uow.Repos{Identities: identities}))

	_, err := uc.CreateUser(context.Background(), CreateUserInput{
		Email:    "taken@example.com",
		Password: "s3cret-pass",
		Role:     "admin",
	})
	if !errors.Is(err, identity.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestBootstrap_IsIdempotent(t *testing.T) {
	// a shared map stands in for the store across both runs
	users := map[string]*identity.User{}
	roleRows := 0

	identities := &identitymock.Repo{
		GetUserByEmailFn: func(ctx context.Context, email string) (*identity.User, error) {
			if u, ok := users[email]; ok {
				return u, nil
			}
			return nil, identity.ErrNotFound
		},
		CreateUserFn: func(ctx context.Context, u *identity.User) error {
			users[u.Email] = u
			return nil
		},
		CreateRoleFn: func(ctx context.Context, ra *identity.RoleAssignment) error {
			if ra.Role != identity.RoleAdmin {
				t.Fatalf("bootstrap role = %q", ra.Role)
			}
			roleRows++
			return nil
		},
	}
	uc := NewUsecase(identities, uowmock.Passthrough(uow.Repos{Identities: identities}))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.Bootstrap(ctx, "admin@example.com", "admin123"); err != nil {
		t.Fatalf("first Bootstrap: %v", err)
	}
	if err := uc.Bootstrap(ctx, "admin@example.com", "admin123"); err != nil {
		t.Fatalf("second Bootstrap must succeed silently: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("users = %d, want 1", len(users))
	}
	if roleRows != 1 {
		t.Fatalf("role rows = %d, want exactly 1", roleRows)
	}
}

func TestListUsers_JoinsRolesWithUsers(t *testing.T) {
	identities := &identitymock.Repo{
		ListRolesFn: func(ctx context.Context) ([]identity.RoleAssignment, error) {
			return []identity.RoleAssignment{
				{UserID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Role: identity.RoleAdmin},
				{UserID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Role: identity.RoleAgent},
			}, nil
		},
		ListUsersFn: func(ctx context.Context) ([]identity.User, error) {
			return []identity.User{
				{UserID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Email: "admin@example.com"},
				{UserID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Email: "agent@example.com"},
			}, nil
		},
	}
	uc := NewUsecase(identities, uowmock.New())

	rows, err := uc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Email != "admin@example.com" || rows[0].Role != identity.RoleAdmin {
		t.Fatalf("row 0: %+v", rows[0])
	}
	if rows[1].Email != "agent@example.com" || rows[1].Role != identity.RoleAgent {
		t.Fatalf("row 1: %+v", rows[1])
	}
}

func TestDeleteUser_RemovesRolesAndUserTogether(t *testing.T) {
	order := []string{}
	identities := &identitymock.Repo{
		DeleteRolesByUserIDFn: func(ctx context.Context, userID string) error {
			order = append(order, "roles")
			return nil
		},
		DeleteUserFn: func(ctx context.Context, userID string) error {
			order = append(order, "user")
			return nil
		},
	}
	uc := NewUsecase(identities, uowmock.Passthrough(uow.Repos{Identities: identities}))

	if err := uc.DeleteUser(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(order) != 2 || order[0] != "roles" || order[1] != "user" {
		t.Fatalf("delete order = %v", order)
	}
}
