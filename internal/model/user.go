package model

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleSupplier Role = "supplier"
)

// Elevated reports whether the role passes the admin/manager gate.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleManager
}

// User represents an account in the system. The credential is stored as a
// PBKDF2 digest plus the per-credential salt; both are hidden from JSON.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username" validate:"required"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Salt     string `gorm:"type:varchar(64);not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;default:'supplier'" json:"role"`
}

// UserResponse is used for API responses (without credential material)
type UserResponse struct {
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
