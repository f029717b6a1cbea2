package identity

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

var (
	ErrNotFound      = errors.New("identity: not found")
	ErrAlreadyExists = errors.New("identity: already exists")
)

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email        string    `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

type RoleAssignment struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"size:32;index:idx_user_roles_user_id" json:"user_id"`
	Role      Role      `gorm:"type:enum('admin','agent')" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RoleAssignment) TableName() string { return "user_roles" }

// EffectiveRole collapses the role rows of one user to a single role.
// The store permits multiple rows per user; precedence is admin > agent,
// chosen explicitly so the outcome never depends on scan order. An empty
// result means the role is still unresolved, not denied.
func EffectiveRole(assignments []RoleAssignment) Role {
	var effective Role
	for _, a := range assignments {
		if a.Role == RoleAdmin {
			return RoleAdmin
		}
		if a.Role == RoleAgent {
			effective = RoleAgent
		}
	}
	return effective
}
