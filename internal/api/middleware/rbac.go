package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/api/metrics"
	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// RBAC enforces role-based access control: the second half of the route
// guard. No allowed roles means any authenticated user passes. Membership
// is exact — there is no role hierarchy.
//
// A caller with the wrong role gets 403 carrying the unauthorized redirect
// and its own role, so the client can state it on the access-denied page.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if len(allowed) > 0 {
				if _, ok := allowed[domain.Role(role)]; !ok {
					metrics.GuardDecisionsTotal.WithLabelValues("unauthorized").Inc()
					return c.JSON(http.StatusForbidden, map[string]string{
						"error":    "access denied",
						"role":     role,
						"redirect": "/unauthorized",
					})
				}
			}
			metrics.GuardDecisionsTotal.WithLabelValues("authorized").Inc()
			return next(c)
		}
	}
}
