package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sidd-gupta05/getfly-project/internal/api/metrics"
	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
)

// RBAC enforces role-based access control on routes whose policy is purely
// role-bound. Ownership-scoped rules stay in the services; message is the
// action-specific text returned on denial.
func RBAC(message string, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[principal.Role]; !ok {
				metrics.ForbiddenTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusForbidden, message)
			}
			return next(c)
		}
	}
}
