package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fieldsight-backend/internal/adapter/middleware"
	"fieldsight-backend/internal/usecase/account"
)

type AuthHandler struct{ uc *account.Usecase }

func NewAuthHandler(uc *account.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type credentialsReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// SignOut exists for client symmetry; sessions are stateless tokens, so
// there is nothing to revoke server-side.
func (h *AuthHandler) SignOut(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Me reports the identity plus its resolved role. An empty role means
// the assignment has not landed yet; the client keeps its loading state
// instead of redirecting.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	dto, err := h.uc.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
