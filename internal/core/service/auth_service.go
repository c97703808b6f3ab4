package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService is the credential gate. It validates login/signup input,
// produces session Users, and is the only component that creates or
// destroys sessions.
//
// Login keeps the platform's demo behavior for emails that never signed
// up: the role is derived from the email's content (see domain.DeriveRole).
// Registered accounts authenticate against their stored bcrypt hash and
// keep their chosen role.
type AuthService struct {
	accounts   ports.AccountRepository
	sessions   *SessionService
	jwtSecret  string
	loginDelay time.Duration
	log        zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, sessions *SessionService, jwtSecret string, loginDelay time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		loginDelay: loginDelay,
		log:        log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if !validCredentials(email, password) {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.resolveUser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	result, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return result, nil
}

func (s *AuthService) Signup(ctx context.Context, email, password, name string, role domain.Role) (*ports.AuthResult, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if !validCredentials(email, password) || name == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Create(ctx, &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	result, err := s.createSession(ctx, &domain.User{
		ID:     account.ID,
		Name:   account.Name,
		Email:  account.Email,
		Role:   account.Role,
		Avatar: account.Avatar,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", account.ID).Str("role", string(account.Role)).Msg("user signed up")
	return result, nil
}

// Logout destroys the session behind token. Idempotent: a missing, garbage,
// or already cleared token is a no-op and never an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	s.sessions.DestroyToken(ctx, token)
	return nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, token, name, avatar string) (*domain.User, error) {
	user := s.sessions.Current(ctx, token)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	user.Avatar = avatar

	if err := s.sessions.Refresh(ctx, token, user); err != nil {
		return nil, err
	}
	return user, nil
}

// resolveUser checks the account registry first; unknown emails fall back
// to the demo identity with a content-derived role.
func (s *AuthService) resolveUser(ctx context.Context, email, password string) (*domain.User, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		return &domain.User{
			ID:     account.ID,
			Name:   account.Name,
			Email:  account.Email,
			Role:   account.Role,
			Avatar: account.Avatar,
		}, nil
	case errors.Is(err, domain.ErrUserNotFound):
		return &domain.User{
			ID:    uuid.NewString(),
			Name:  displayName(email),
			Email: email,
			Role:  domain.DeriveRole(email),
		}, nil
	default:
		return nil, err
	}
}

func (s *AuthService) createSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	sessionID := uuid.NewString()
	token, err := s.generateToken(sessionID, user)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, sessionID, user); err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) generateToken(sessionID string, user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"jti":   sessionID,
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"name":  user.Name,
		"exp":   time.Now().Add(s.sessions.TTL()).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// wait simulates the upstream identity-provider round trip. It honors ctx
// so callers can impose deadlines or cancel outright.
func (s *AuthService) wait(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.loginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func validCredentials(email, password string) bool {
	return strings.Contains(email, "@") && len(password) >= minPasswordLen
}

// displayName derives a name from the email's local part.
func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
