package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fieldsight-backend/internal/usecase/provisioning"
)

type UserHandler struct{ uc *provisioning.Usecase }

func NewUserHandler(uc *provisioning.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type createUserReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,roleenum"`
}

func (h *UserHandler) List(c echo.Context) error {
	rows, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"rows": rows})
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	user, err := h.uc.CreateUser(c.Request().Context(), provisioning.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("user_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
