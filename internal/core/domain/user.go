package domain

import (
	"errors"
	"strings"
	"time"
)

// Role identifies what kind of actor a user is on the platform.
type Role string

const (
	RoleFactory  Role = "factory"
	RoleMarketer Role = "marketer"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the three platform roles.
func ValidRole(r Role) bool {
	return r == RoleFactory || r == RoleMarketer || r == RoleAdmin
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// User models an authenticated actor. This is the exact shape persisted in
// the session store: {id, name, email, role, avatar?}.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Account is a registered user record. Unlike the ephemeral session User it
// carries the password hash and is persisted durably.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeriveRole maps an email address to a demo role: emails containing
// "factory" become factories, emails containing "admin" become admins,
// everything else becomes a marketer. Stand-in behavior for emails that
// never signed up; registered accounts carry their real role instead.
func DeriveRole(email string) Role {
	switch {
	case strings.Contains(email, "factory"):
		return RoleFactory
	case strings.Contains(email, "admin"):
		return RoleAdmin
	default:
		return RoleMarketer
	}
}
