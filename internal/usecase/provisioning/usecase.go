// Package provisioning covers privileged user creation: the admin user
// management screen and the one-shot default-admin bootstrap at startup.
package provisioning

import (
	"context"
	"errors"
	"fmt"

	"fieldsight-backend/internal/auth"
	"fieldsight-backend/internal/domain/identity"
	"fieldsight-backend/internal/domain/uow"
	"fieldsight-backend/internal/platform/logging"
	"fieldsight-backend/pkg/id"
)

var ErrInvalidRole = errors.New("provisioning: role must be admin or agent")

type Usecase struct {
	repo identity.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r identity.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserDTO struct {
	UserID    string        `json:"user_id"`
	Email     string        `json:"email"`
	Role      identity.Role `json:"role"`
	CreatedAt string        `json:"created_at"`
}

// CreateUser provisions a user and its role assignment in one
// transaction.
func (u *Usecase) CreateUser(ctx context.Context, in CreateUserInput) (*identity.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("provisioning: email and password are required")
	}
	role := identity.Role(in.Role)
	if role != identity.RoleAdmin && role != identity.RoleAgent {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &identity.User{UserID: id.NewID32(), Email: in.Email, PasswordHash: hash}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Identities.GetUserByEmail(ctx, in.Email); err == nil {
			return identity.ErrAlreadyExists
		}
		if err := r.Identities.CreateUser(ctx, user); err != nil {
			return err
		}
		return r.Identities.CreateRole(ctx, &identity.RoleAssignment{UserID: user.UserID, Role: role})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Bootstrap seeds the default admin identity. Reruns succeed silently:
// an existing account only logs "already exists" and yields one role
// row, never two.
func (u *Usecase) Bootstrap(ctx context.Context, email, password string) error {
	_, err := u.CreateUser(ctx, CreateUserInput{
		Email:    email,
		Password: password,
		Role:     string(identity.RoleAdmin),
	})
	if errors.Is(err, identity.ErrAlreadyExists) {
		logging.GetLogger().WithField("email", email).Info("bootstrap: admin already exists")
		return nil
	}
	if err != nil {
		return err
	}
	logging.GetLogger().WithField("email", email).Info("bootstrap: admin created")
	return nil
}

// ListUsers joins role assignments with their user rows, the way the
// user management screen displays them.
func (u *Usecase) ListUsers(ctx context.Context) ([]UserDTO, error) {
	roles, err := u.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]identity.User, len(users))
	for _, usr := range users {
		byID[usr.UserID] = usr
	}

	out := make([]UserDTO, 0, len(roles))
	for _, ra := range roles {
		dto := UserDTO{UserID: ra.UserID, Role: ra.Role}
		if usr, ok := byID[ra.UserID]; ok {
			dto.Email = usr.Email
			dto.CreatedAt = usr.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		out = append(out, dto)
	}
	return out, nil
}

// DeleteUser removes the user and all of its role rows together.
func (u *Usecase) DeleteUser(ctx context.Context, userID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Identities.DeleteRolesByUserID(ctx, userID); err != nil {
			return err
		}
		return r.Identities.DeleteUser(ctx, userID)
	})
}
