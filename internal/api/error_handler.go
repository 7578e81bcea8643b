package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adopet/account-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

const msgInternalError = "Erro interno no servidor, tente novamente mais tarde."

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their status codes and localized messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Handlers map most domain errors inline; this is the safety net for
// errors that escape them (middleware failures, store errors).
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (404 from the router, middleware rejections, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic codes and localized messages.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado!"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusUnprocessableEntity, "Usuário já existe!"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusBadRequest, "Token inválido!"
	case errors.Is(err, domain.ErrNameRequired):
		return http.StatusUnprocessableEntity, "Nome é obrigatório!"
	case errors.Is(err, domain.ErrEmailRequired):
		return http.StatusUnprocessableEntity, "E-mail é obrigatório!"
	case errors.Is(err, domain.ErrPasswordRequired):
		return http.StatusUnprocessableEntity, "Senha é obrigatória!"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgInternalError
}
