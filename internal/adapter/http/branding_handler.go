package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "fieldsight-backend/internal/domain/branding"
	"fieldsight-backend/internal/usecase/branding"
)

type BrandingHandler struct{ uc *branding.Usecase }

func NewBrandingHandler(uc *branding.Usecase) *BrandingHandler {
	return &BrandingHandler{uc: uc}
}

// Get serves the header details every page reads on load. Before the
// admin configures them, an empty record comes back instead of an error.
func (h *BrandingHandler) Get(c echo.Context) error {
	hd, err := h.uc.Get(c.Request().Context())
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusOK, &domain.HeaderDetails{})
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, hd)
}

func (h *BrandingHandler) Update(c echo.Context) error {
	var in branding.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	hd, err := h.uc.Update(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, hd)
}
