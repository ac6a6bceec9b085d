package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/ports"
)

// UserHandler serves user accounts.
type UserHandler struct {
	svc ports.UserService
}

func NewUserHandler(svc ports.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}		userResponse
//	@Failure	500	{object}	StatusResponse
//	@Router		/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Stats godoc
//
//	@Summary	Aggregate user statistics
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	usersStatsResponse
//	@Router		/users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

// Get godoc
//
//	@Summary	Get a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	userResponse
//	@Failure	400	{object}	StatusResponse
//	@Failure	404	{object}	StatusResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	u, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Create godoc
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		createUserRequest	true	"New user"
//	@Success	201		{object}	userResponse
//	@Failure	400		{object}	StatusResponse
//	@Failure	409		{object}	StatusResponse
//	@Router		/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.svc.Create(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(u))
}

// Edit godoc
//
//	@Summary		Edit a user
//	@Description	Only keys present in the body change. null clears email or avatar.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int				true	"User ID"
//	@Param			body	body		editUserRequest	true	"Fields to change"
//	@Success		200		{object}	userResponse
//	@Failure		400		{object}	StatusResponse
//	@Failure		404		{object}	StatusResponse
//	@Failure		409		{object}	StatusResponse
//	@Router			/users/{id} [patch]
func (h *UserHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	u, err := h.svc.Update(c.Request().Context(), id, toUserPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Delete godoc
//
//	@Summary	Delete a user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	StatusResponse
//	@Failure	404	{object}	StatusResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "user deleted"})
}
