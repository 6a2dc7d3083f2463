package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account. PasswordHash is empty for accounts created
// through the external identity provider.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalAuthID *string   `gorm:"column:external_auth_id;unique;size:100" json:"external_auth_id,omitempty"`
	Email          string    `gorm:"unique;size:255;not null" json:"email"`
	Username       string    `gorm:"unique;size:50;not null" json:"username"`
	Role           string    `gorm:"size:20;default:'user'" json:"role"`
	Verified       bool      `gorm:"default:false" json:"verified"`
	PasswordHash   string    `gorm:"size:100" json:"-"`
	CreatedAt      time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
