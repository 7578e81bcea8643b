package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adopet/account-service/internal/api/metrics"
	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

// AccountHandler handles public account endpoints: signup and login.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Hello is the unauthenticated root probe.
//
// @Summary      Service greeting
// @Tags         account
// @Produce      json
// @Success      200  {object}  helloResponse
// @Router       / [get]
func (h *AccountHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, helloResponse{Msg: msgHello})
}

// Signup creates a new account and returns a token for it.
//
// @Summary      Register a new user
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	token, user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return accountError(c, err)
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, signupResponse{
		Success:     msgSignupSuccess,
		AccessToken: token,
		User:        toRegisteredUserResponse(user),
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		}
		return accountError(c, err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success:     msgLoginSuccess,
		AccessToken: token,
		User:        toUserResponse(user),
	})
}

// accountError maps known domain errors to their localized envelopes.
// Anything else bubbles to the central error handler, which logs it and
// renders the generic 500 message.
func accountError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: msgNameRequired})
	case errors.Is(err, domain.ErrEmailRequired):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: msgEmailRequired})
	case errors.Is(err, domain.ErrPasswordRequired):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: msgPasswordRequired})
	case errors.Is(err, domain.ErrUserExists):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: msgUserExists})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: msgUserNotFound})
	}
	return err
}
