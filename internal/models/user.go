package models

import "time"

// Roles a user account can hold.
const (
	RoleConsumer = "consumer"
	RoleCreator  = "creator"
	RoleAdmin    = "admin"
)

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password_hash;not null"` // bcrypt hash, never serialized
	Role      string    `json:"role" gorm:"default:'consumer';not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsCreator() bool {
	return u.Role == RoleCreator
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	return role == RoleConsumer || role == RoleCreator || role == RoleAdmin
}
