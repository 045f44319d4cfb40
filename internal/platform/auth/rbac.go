package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that checks if the user has one of the
// specified roles. The admin role always passes.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c.Request().Context())
			if role == RoleAdmin {
				return next(c)
			}
			for _, required := range roles {
				if role == required {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

// RequirePractice returns middleware that rejects callers whose token is not
// bound to any practice. Admin tokens are exempt because they operate across
// tenants.
func RequirePractice() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if IsAdmin(ctx) {
				return next(c)
			}
			if PracticeIDFromContext(ctx) == "" {
				return echo.NewHTTPError(http.StatusForbidden, "token is not bound to a practice")
			}
			return next(c)
		}
	}
}

// CanAccessPractice reports whether a caller with the given role and home
// practice may operate on targetPractice. Admins may access any practice;
// everyone else only their own.
func CanAccessPractice(role, homePractice, targetPractice string) bool {
	if role == RoleAdmin {
		return true
	}
	return homePractice != "" && homePractice == targetPractice
}
