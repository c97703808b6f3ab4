package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/service"
)

type stubStore struct {
	sessions map[string]*domain.User
}

func (s *stubStore) Get(_ context.Context, sessionID string) (*domain.User, error) {
	return s.sessions[sessionID], nil
}

func (s *stubStore) Put(_ context.Context, sessionID string, user *domain.User, _ time.Duration) error {
	s.sessions[sessionID] = user
	return nil
}

func (s *stubStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubStore) Ping(_ context.Context) error { return nil }

const testSecret = "test-secret"

func newGuardedSessions(t *testing.T, users map[string]*domain.User) *service.SessionService {
	t.Helper()
	store := &stubStore{sessions: users}
	if store.sessions == nil {
		store.sessions = make(map[string]*domain.User)
	}
	sessions := service.NewSessionService(store, testSecret, time.Hour, zerolog.Nop())
	sessions.Initialize(context.Background())
	return sessions
}

func testToken(t *testing.T, jti string) string {
	t.Helper()
	claims := jwt.MapClaims{"jti": jti, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestGuard_Unauthenticated(t *testing.T) {
	sessions := newGuardedSessions(t, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/factories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["redirect"] != "/signin" {
		t.Fatalf("expected signin redirect, got %q", body["redirect"])
	}
	if body["from"] != "/dashboard/factories" {
		t.Fatalf("expected original path preserved, got %q", body["from"])
	}
}

func TestGuard_AuthenticatedInjectsUser(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleMarketer}
	sessions := newGuardedSessions(t, map[string]*domain.User{"sess-1": user})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/leads", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "sess-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(sessions)(func(c echo.Context) error {
		got, _ := c.Get("user").(*domain.User)
		if got == nil || got.ID != "u1" {
			t.Fatalf("expected user in context, got %+v", got)
		}
		if role, _ := c.Get("role").(string); role != "marketer" {
			t.Fatalf("expected role in context, got %q", role)
		}
		if token, _ := c.Get("token").(string); token == "" {
			t.Fatalf("expected token in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_GarbageToken(t *testing.T) {
	sessions := newGuardedSessions(t, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGuard_StoreInitializing(t *testing.T) {
	store := &stubStore{sessions: make(map[string]*domain.User)}
	sessions := service.NewSessionService(store, testSecret, time.Hour, zerolog.Nop())
	// Initialize never called: the guard must answer with a transient wait.

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestGuardAndRBAC_Chained(t *testing.T) {
	marketer := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleMarketer}
	admin := &domain.User{ID: "u2", Name: "Root", Email: "admin@example.com", Role: domain.RoleAdmin}
	sessions := newGuardedSessions(t, map[string]*domain.User{
		"sess-marketer": marketer,
		"sess-admin":    admin,
	})

	e := echo.New()
	guarded := func(roles ...domain.Role) echo.HandlerFunc {
		return Guard(sessions)(RBAC(roles...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}))
	}

	// Marketer on an admin-only route: authenticated but not authorized.
	req := httptest.NewRequest(http.MethodGet, "/dashboard/factories", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "sess-marketer"))
	rec := httptest.NewRecorder()
	if err := guarded(domain.RoleAdmin)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for marketer, got %d", rec.Code)
	}

	// Admin on a factory+admin route: authorized.
	req = httptest.NewRequest(http.MethodGet, "/dashboard/marketers", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "sess-admin"))
	rec = httptest.NewRecorder()
	if err := guarded(domain.RoleFactory, domain.RoleAdmin)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}

	// No session at all: the guard answers before RBAC runs.
	req = httptest.NewRequest(http.MethodGet, "/dashboard/marketers", nil)
	rec = httptest.NewRecorder()
	if err := guarded(domain.RoleFactory, domain.RoleAdmin)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}
}
