package account

import (
	"context"
	"errors"
	"time"

	"fieldsight-backend/internal/auth"
	"fieldsight-backend/internal/domain/identity"
	"fieldsight-backend/pkg/id"
)

var ErrBadCredentials = errors.New("account: invalid email or password")

type Usecase struct {
	repo   identity.Repository
	tokens *auth.TokenManager
}

func NewUsecase(r identity.Repository, tm *auth.TokenManager) *Usecase {
	return &Usecase{repo: r, tokens: tm}
}

type SessionDTO struct {
	Token  string    `json:"token"`
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Expiry time.Time `json:"-"`
}

// MeDTO carries the identity plus its resolved role. Role is empty while
// no assignment exists; clients treat that as "still resolving", not as
// a denial, so a legitimate admin is never bounced before the lookup
// lands.
type MeDTO struct {
	UserID    string        `json:"user_id"`
	Email     string        `json:"email"`
	Role      identity.Role `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
}

// SignUp registers a user without any role. Access stays pending until
// an admin assigns one.
func (u *Usecase) SignUp(ctx context.Context, email, password string) (*SessionDTO, error) {
	if email == "" || password == "" {
		return nil, ErrBadCredentials
	}
	if _, err := u.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, identity.ErrAlreadyExists
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &identity.User{UserID: id.NewID32(), Email: email, PasswordHash: hash}
	if err := u.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return u.issue(user)
}

func (u *Usecase) SignIn(ctx context.Context, email, password string) (*SessionDTO, error) {
	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrBadCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return u.issue(user)
}

// Me resolves the current identity and its effective role.
func (u *Usecase) Me(ctx context.Context, userID string) (*MeDTO, error) {
	user, err := u.repo.GetUserByUserID(ctx, userID)
	if err != nil {
		return nil, identity.ErrNotFound
	}
	roles, err := u.repo.RolesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &MeDTO{
		UserID:    user.UserID,
		Email:     user.Email,
		Role:      identity.EffectiveRole(roles),
		CreatedAt: user.CreatedAt,
	}, nil
}

// ResolveRole is the store lookup the gate middleware depends on.
func (u *Usecase) ResolveRole(ctx context.Context, userID string) (identity.Role, error) {
	roles, err := u.repo.RolesByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return identity.EffectiveRole(roles), nil
}

func (u *Usecase) issue(user *identity.User) (*SessionDTO, error) {
	token, err := u.tokens.Issue(user.UserID, user.Email)
	if err != nil {
		return nil, err
	}
	return &SessionDTO{Token: token, UserID: user.UserID, Email: user.Email}, nil
}
