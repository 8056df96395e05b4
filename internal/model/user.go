package model

import (
	"time"

	"github.com/google/uuid"
)

// User role constants
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// AdminUsername is the built-in account that can never be deleted.
const AdminUsername = "admin"

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOperator
}

// User is a panel login (admin or operator).
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Name     string `json:"name"`
}

type UpdateUserPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type DeleteUserRequest struct {
	Username string `json:"username" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
