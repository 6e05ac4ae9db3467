package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
	"github.com/huamengwoke/finance_assistant_app/internal/middleware"
)

// respondError maps service errors onto envelope responses. Unrecognized
// errors are reported as 500 with the message only, keeping internals out
// of the payload.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallbackMsg, "error", err)
		c.JSON(http.StatusInternalServerError, dto.FailErr(fallbackMsg, err))
	}
}

// parseIDParam reads a numeric path parameter; a false return means the
// response has already been written.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
