package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adopet/account-service/internal/api/metrics"
	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

const (
	// UserKey is the context key under which LoadUser stores the resolved
	// target user.
	UserKey = "user"

	msgUserNotFound = "Usuário não encontrado!"
)

// LoadUser is the second stage of the authorization pipeline. It resolves
// the :id path parameter against the store (password hash excluded from
// the projection) and attaches the sanitized user to the request context.
//
// The token subject is deliberately NOT compared against :id: any
// authenticated user may read or update any profile. This matches the
// service's historical behaviour.
func LoadUser(finder ports.UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := finder.FindByID(c.Request().Context(), c.Param("id"))
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("user_not_found").Inc()
					return echo.NewHTTPError(http.StatusNotFound, msgUserNotFound)
				}
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}
