package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fieldsight-backend/internal/domain/branding"
	"fieldsight-backend/internal/domain/identity"
	"fieldsight-backend/internal/domain/inspection"
	"fieldsight-backend/internal/domain/payout"
	"fieldsight-backend/internal/domain/submission"
	"fieldsight-backend/internal/listing"
	"fieldsight-backend/internal/usecase/account"
	ucinspection "fieldsight-backend/internal/usecase/inspection"
	ucpayout "fieldsight-backend/internal/usecase/payout"
	ucsubmission "fieldsight-backend/internal/usecase/submission"
)

// writeError maps domain errors to notification-style JSON bodies. A
// store-policy rejection and any other store failure share the same
// shape on purpose: the client cannot tell permission from absence.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ucinspection.ErrMissingField),
		errors.Is(err, ucpayout.ErrMissingField),
		errors.Is(err, ucsubmission.ErrMissingField):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, account.ErrBadCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
	case errors.Is(err, inspection.ErrNotFound),
		errors.Is(err, payout.ErrNotFound),
		errors.Is(err, submission.ErrNotFound),
		errors.Is(err, identity.ErrNotFound),
		errors.Is(err, branding.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, identity.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "already exists"})
	case errors.Is(err, submission.ErrTerminalState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "already reviewed"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
	}
}

// pageParams reads page/page_size, falling back to page 1 and the
// default page size; clamping to the real page count happens in listing.
func pageParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	return page, pageSize
}

// applyFilterParams copies the known filter query params into the
// state; absent params leave their field at the sentinel.
func applyFilterParams(c echo.Context, fs *listing.FilterState) {
	for _, param := range fs.Params() {
		if v := c.QueryParam(param); v != "" {
			fs.Set(param, v)
		}
	}
}
