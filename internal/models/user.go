package models

import (
	"time"
)

// User represents an account in the system
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Picture      string    `json:"picture" db:"picture"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"user":  true,
	"admin": true,
}

// UserInfo is the identity summary attached to enriched records
type UserInfo struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Picture  string `json:"picture" db:"picture"`
	Username string `json:"username" db:"username"`
}

// AuthUser is the authenticated caller extracted from an access token
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the caller holds the admin role
func (u *AuthUser) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// SignupInput is the payload for account registration
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput is the payload for authentication
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse mirrors the token bundle handed to clients on login
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	ID           string `json:"id"`
}
