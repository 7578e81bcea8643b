package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adopet/account-service/internal/api/metrics"
)

const (
	// UserIDKey is the context key under which Auth stores the verified
	// token subject.
	UserIDKey = "user_id"

	msgAccessDenied = "Acesso negado!"
	msgInvalidToken = "Token inválido!"
)

// TokenVerifier checks a bearer token and returns its subject user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth is the first stage of the authorization pipeline. It distinguishes
// an absent credential from a rejected one: a missing Authorization header
// or a missing second segment is 401, while a token that fails
// verification (malformed, forged, expired) is 400. The scheme word is not
// inspected, only the second whitespace-separated segment counts.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgAccessDenied)
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, msgInvalidToken)
			}

			c.Set(UserIDKey, subject)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
