package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// Require chains Auth and RBAC. An empty secret disables both and returns
// no middleware.
func Require(jwtSecret string, roles ...string) []echo.MiddlewareFunc {
	if jwtSecret == "" {
		return nil
	}
	return []echo.MiddlewareFunc{Auth(jwtSecret), RBAC(roles...)}
}
