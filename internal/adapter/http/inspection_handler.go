package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fieldsight-backend/internal/adapter/middleware"
	"fieldsight-backend/internal/export"
	"fieldsight-backend/internal/listing"
	"fieldsight-backend/internal/usecase/inspection"
)

type InspectionHandler struct{ uc *inspection.Usecase }

func NewInspectionHandler(uc *inspection.Usecase) *InspectionHandler {
	return &InspectionHandler{uc: uc}
}

func (h *InspectionHandler) query(c echo.Context) listing.Query {
	fs := inspection.Filters()
	applyFilterParams(c, fs)
	ownerID := ""
	if claims := middleware.Claims(c); claims != nil {
		ownerID = claims.UserID
	}
	return listing.BuildQuery(middleware.Scope(c), ownerID, fs)
}

func (h *InspectionHandler) List(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), h.query(c))
	if err != nil {
		return writeError(c, err)
	}
	page, pageSize := pageParams(c)
	pr := listing.SearchPage(res.Rows, inspection.Columns(), c.QueryParam("q"), page, pageSize)
	return c.JSON(http.StatusOK, map[string]any{
		"rows":        pr.Rows,
		"page":        pr.Page,
		"page_size":   pr.PageSize,
		"total_rows":  pr.TotalRows,
		"total_pages": pr.TotalPages,
		"generation":  res.Generation,
	})
}

func (h *InspectionHandler) Create(c echo.Context) error {
	var in inspection.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	claims := middleware.Claims(c)
	rep, err := h.uc.Create(c.Request().Context(), claims.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rep)
}

func (h *InspectionHandler) Update(c echo.Context) error {
	var in inspection.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	claims := middleware.Claims(c)
	rep, err := h.uc.Update(c.Request().Context(), middleware.Scope(c), claims.UserID, c.Param("report_id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *InspectionHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("report_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export streams the current filtered, scoped row set as a workbook. It
// reuses the exact query the list endpoint would run.
func (h *InspectionHandler) Export(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), h.query(c))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, "Inspection Reports", inspection.Columns(), res.Rows); err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("inspection_reports_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
