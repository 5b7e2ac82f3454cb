package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellhub/marketplace-api/internal/api/metrics"
	"github.com/sellhub/marketplace-api/internal/core/domain"
)

// RBAC restricts a route to callers holding one of the allowed roles. It must
// always be mounted after Auth: an absent role means authentication never ran
// and the request is rejected outright.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(domain.Role)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues("role_gate").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
