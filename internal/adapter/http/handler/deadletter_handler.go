package handler

import (
	"fmt"
	"strconv"
	"time"

	"deadletter-watchdog/internal/core/ports"
	"deadletter-watchdog/pkg/apperror"
	"deadletter-watchdog/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	dateLayout = "2006-01-02"

	defaultPageSize = 10
	v1MaxPageSize   = 500
	v2MaxPageSize   = 20
)

// DeadletterHandler serves the enriched dead-letter listings.
type DeadletterHandler struct {
	deadletterSvc ports.DeadletterService
}

// NewDeadletterHandler creates a new DeadletterHandler.
func NewDeadletterHandler(deadletterSvc ports.DeadletterService) *DeadletterHandler {
	return &DeadletterHandler{deadletterSvc: deadletterSvc}
}

// ListByDate handles GET /api/v1/deadletter/transactions.
//
// Deprecated in favour of the v2 date-range listing; kept while the console
// migrates.
func (h *DeadletterHandler) ListByDate(c *gin.Context) {
	date, err := parseDate(c.Query("date"), "date")
	if err != nil {
		response.Error(c, err)
		return
	}

	pageNumber, pageSize, err := parsePaging(c, v1MaxPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.deadletterSvc.ListByDate(c.Request.Context(), date, pageNumber, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, page)
}

// ListByDateRange handles GET /api/v2/deadletter/transactions.
func (h *DeadletterHandler) ListByDateRange(c *gin.Context) {
	from, err := parseDate(c.Query("fromDate"), "fromDate")
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := parseDate(c.Query("toDate"), "toDate")
	if err != nil {
		response.Error(c, err)
		return
	}
	if to.Before(from) {
		response.Error(c, apperror.Validation("toDate must not precede fromDate"))
		return
	}

	pageNumber, pageSize, err := parsePaging(c, v2MaxPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.deadletterSvc.ListByDateRange(c.Request.Context(), from, to, pageNumber, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, page)
}

// parseDate parses a required yyyy-MM-dd query parameter.
func parseDate(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperror.Validation(fmt.Sprintf("%s is required", name))
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validation(fmt.Sprintf("%s must be formatted as yyyy-MM-dd", name))
	}
	return date, nil
}

// parsePaging parses pageNumber and pageSize with bounds checking.
func parsePaging(c *gin.Context, maxPageSize int) (int, int, error) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("pageNumber", "0"))
	if err != nil || pageNumber < 0 {
		return 0, 0, apperror.Validation("pageNumber must be a non-negative integer")
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, apperror.Validation(fmt.Sprintf("pageSize must be between 1 and %d", maxPageSize))
	}

	return pageNumber, pageSize, nil
}
