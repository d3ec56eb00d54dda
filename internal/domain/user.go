package domain

import (
	"context"
	"time"
)

type User struct {
	ID        string    `json:"user_id"` // Supabase UUID
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"joined_at"`
	UpdatedAt time.Time `json:"-"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	// RegisterSession records a validated session token holder. Fire-and-forget
	// from the client's perspective; failures are reported, not fatal.
	RegisterSession(ctx context.Context, userID, email string) error
	// EnsureUserExists provisions a backend user record if missing
	// (fetch-by-id, create only when not found).
	EnsureUserExists(ctx context.Context, user *User) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
