package domain

import (
	"errors"
	"time"
)

var ErrEmailRegistered = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidPassword = errors.New("invalid password")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrMissingCredentials = errors.New("missing required credentials")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models an account that owns zero or more projects.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active"`
}
