package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adopet/account-service/internal/api/middleware"
	"github.com/adopet/account-service/internal/core/domain"
)

// ctxUser extracts the sanitized target user attached by the LoadUser
// middleware. Its absence means the route was wired without the
// authorization pipeline; fail closed rather than serve an empty record.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgAccessDenied)
	}
	return user, nil
}
