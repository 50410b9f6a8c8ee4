package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthhub/gym-admin/internal/api/metrics"
	"github.com/healthhub/gym-admin/internal/core/domain"
)

// RBAC enforces role-based access control by set membership. A role not
// explicitly listed is denied regardless of any notion of seniority.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := domain.NewRoleSet(allowedRoles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if !allowed.Contains(role) {
				metrics.AccessDecisionsTotal.WithLabelValues(c.Path(), "denied").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			metrics.AccessDecisionsTotal.WithLabelValues(c.Path(), "granted").Inc()
			return next(c)
		}
	}
}
