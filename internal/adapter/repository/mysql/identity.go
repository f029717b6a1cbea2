package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "fieldsight-backend/internal/domain/identity"
)

type IdentityRepository struct{ db *gorm.DB }

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) CreateUser(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *IdentityRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *IdentityRepository) GetUserByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *IdentityRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *IdentityRepository) DeleteUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.User{}).Error
}

func (r *IdentityRepository) CreateRole(ctx context.Context, ra *domain.RoleAssignment) error {
	return r.db.WithContext(ctx).Create(ra).Error
}

func (r *IdentityRepository) RolesByUserID(ctx context.Context, userID string) ([]domain.RoleAssignment, error) {
	var out []domain.RoleAssignment
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&out)
	return out, res.Error
}

func (r *IdentityRepository) ListRoles(ctx context.Context) ([]domain.RoleAssignment, error) {
	var out []domain.RoleAssignment
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *IdentityRepository) DeleteRolesByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.RoleAssignment{}).Error
}
