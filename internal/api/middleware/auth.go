package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/api/metrics"
	"github.com/exportbase/marketplace-api/internal/core/service"
)

// Guard resolves the bearer token to the persisted session User and injects
// it into the request context. It is the first half of the route guard:
//
//   - session store still initializing → 503 with Retry-After, no decision
//   - no resolvable session → 401 carrying the sign-in redirect and the
//     originally requested path
//   - otherwise the user is attached and the request proceeds (role checks
//     are RBAC's job)
//
// Evaluated on every request, never cached; for the same session and route
// the outcome is always the same.
func Guard(sessions *service.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.Ready() {
				metrics.GuardDecisionsTotal.WithLabelValues("loading").Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"error": "session store initializing",
				})
			}

			token := bearerToken(c)
			user := sessions.Current(c.Request().Context(), token)
			if user == nil {
				metrics.GuardDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":    "authentication required",
					"redirect": "/signin",
					"from":     c.Request().URL.Path,
				})
			}

			c.Set("user", user)
			c.Set("user_id", user.ID)
			c.Set("role", string(user.Role))
			c.Set("token", token)

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. A missing
// or non-bearer header yields the empty string, which resolves to no user.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
