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
	"fieldsight-backend/internal/usecase/payout"
)

type PayoutHandler struct{ uc *payout.Usecase }

func NewPayoutHandler(uc *payout.Usecase) *PayoutHandler { return &PayoutHandler{uc: uc} }

func (h *PayoutHandler) query(c echo.Context) listing.Query {
	fs := payout.Filters()
	applyFilterParams(c, fs)
	ownerID := ""
	if claims := middleware.Claims(c); claims != nil {
		ownerID = claims.UserID
	}
	return listing.BuildQuery(middleware.Scope(c), ownerID, fs)
}

func (h *PayoutHandler) List(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), h.query(c))
	if err != nil {
		return writeError(c, err)
	}
	page, pageSize := pageParams(c)
	pr := listing.SearchPage(res.Rows, payout.Columns(), c.QueryParam("q"), page, pageSize)
	return c.JSON(http.StatusOK, map[string]any{
		"rows":        pr.Rows,
		"page":        pr.Page,
		"page_size":   pr.PageSize,
		"total_rows":  pr.TotalRows,
		"total_pages": pr.TotalPages,
		"generation":  res.Generation,
	})
}

func (h *PayoutHandler) Create(c echo.Context) error {
	var in payout.Input
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

func (h *PayoutHandler) Update(c echo.Context) error {
	var in payout.Input
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

func (h *PayoutHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("report_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PayoutHandler) Export(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), h.query(c))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, "Payout Reports", payout.Columns(), res.Rows); err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("payout_reports_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
