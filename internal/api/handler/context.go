package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// currentUser extracts the session User injected by the guard middleware.
// Absence means the guard did not run on this route.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session user")
	}
	return user, nil
}

// tokenFromHeader extracts the bearer token on public auth routes, where
// the guard middleware has not run. Empty when absent or malformed.
func tokenFromHeader(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// sessionToken returns the verified token the guard middleware stored for
// this request.
func sessionToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}

// factoryNameOf returns the company name a factory user acts under. Factory
// accounts use their display name as the company name.
func factoryNameOf(user *domain.User) string {
	if user.Role != domain.RoleFactory {
		return ""
	}
	return user.Name
}
