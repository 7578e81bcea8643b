package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adopet/account-service/internal/api/metrics"
	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

// ProfileHandler handles the token-gated profile endpoints. Both routes
// run behind the Auth and LoadUser middlewares, so by the time a handler
// executes the target user is already resolved and sanitized.
type ProfileHandler struct {
	service ports.AccountService
}

func NewProfileHandler(service ports.AccountService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get returns the target user's public projection.
//
// @Summary      Read a user profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: toUserResponse(user)})
}

// Update overwrites the target user's mutable fields with the request
// body. There is no partial update: absent fields clear stored values.
//
// @Summary      Update a user profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "New profile values"
// @Success      201   {object}  updateProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}

	updated, err := h.service.UpdateProfile(c.Request().Context(), user.ID, ports.ProfileUpdate{
		Name:   req.Name,
		Github: req.Github,
		Phone:  req.Phone,
		City:   req.City,
		About:  req.About,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgUserNotFound})
		}
		return err
	}

	metrics.ProfileUpdatesTotal.Inc()
	return c.JSON(http.StatusCreated, updateProfileResponse{
		Success: msgUpdateSuccess,
		User:    toUserResponse(updated),
	})
}
