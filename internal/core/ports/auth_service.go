package ports

import (
	"context"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// AuthResult bundles the session token and user returned after a successful
// login or signup.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService is the credential gate: the only component allowed to create
// or destroy sessions.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, email, password, name string, role domain.Role) (*AuthResult, error)
	// Logout destroys the session for token. Calling it with an expired,
	// malformed, or already cleared token is a no-op.
	Logout(ctx context.Context, token string) error
	// UpdateProfile mutates the session user's display name and avatar and
	// writes the result back through the session store.
	UpdateProfile(ctx context.Context, token, name, avatar string) (*domain.User, error)
}
