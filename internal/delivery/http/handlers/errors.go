package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorStatus struct {
	err    error
	status int
	code   string
}

// errorStatuses is checked in order; the first errors.Is match wins.
var errorStatuses = []errorStatus{
	{domain.ErrQuotaExhausted, http.StatusForbidden, "package_required"},
	{domain.ErrTaskNotAvailable, http.StatusConflict, "not_available"},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient_funds"},
	{domain.ErrPackageInUse, http.StatusConflict, "package_in_use"},
	{domain.ErrPaymentProcessed, http.StatusConflict, "payment_processed"},
	{domain.ErrWithdrawalProcessed, http.StatusConflict, "withdrawal_processed"},
	{domain.ErrBelowMinimumWithdrawal, http.StatusBadRequest, "below_minimum_withdrawal"},
	{domain.ErrInvalidSignature, http.StatusBadRequest, "invalid_signature"},
	{domain.ErrValidation, http.StatusBadRequest, "validation_error"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
}

func writeError(c *gin.Context, err error) {
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			c.AbortWithStatusJSON(m.status, response.ErrorResponse{Code: m.code, Error: err.Error()})
			return
		}
	}
	slog.Error("request failed",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"error", err,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
		Code:  "internal",
		Error: "internal server error",
	})
}

func writeBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{
		Code:  "validation_error",
		Error: err.Error(),
	})
}

// caller returns the authenticated identity. Routes using it sit behind
// the auth middleware, so a missing identity is a wiring bug.
func caller(c *gin.Context) domain.Identity {
	identity, ok := middleware.Identity(c)
	if !ok {
		panic("handlers: route is missing the auth middleware")
	}
	return identity
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	return page, limit
}
