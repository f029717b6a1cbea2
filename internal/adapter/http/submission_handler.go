package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fieldsight-backend/internal/usecase/submission"
)

type SubmissionHandler struct{ uc *submission.Usecase }

func NewSubmissionHandler(uc *submission.Usecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

// Create is the public intake: the only write an unauthenticated caller
// may perform.
func (h *SubmissionHandler) Create(c echo.Context) error {
	var in submission.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	s, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SubmissionHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"rows": rows})
}

func (h *SubmissionHandler) Approve(c echo.Context) error {
	s, err := h.uc.Approve(c.Request().Context(), c.Param("submission_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SubmissionHandler) Reject(c echo.Context) error {
	s, err := h.uc.Reject(c.Request().Context(), c.Param("submission_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
