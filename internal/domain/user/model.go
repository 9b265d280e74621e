package user

import "time"

const (
	RoleParent = "parent"
	RoleHelper = "helper"
)

// User is a stored identity. PasswordHash never leaves the domain; use Public
// for anything that is serialized.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	Role         string    `gorm:"column:role;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Session struct {
	Token string
	User  PublicUser
}

func IsValidRole(role string) bool {
	return role == RoleParent || role == RoleHelper
}
