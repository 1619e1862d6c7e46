package handler

import (
	"deadletter-watchdog/internal/adapter/http/dto"
	"deadletter-watchdog/internal/adapter/http/middleware"
	"deadletter-watchdog/internal/core/ports"
	"deadletter-watchdog/pkg/apperror"
	"deadletter-watchdog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActionHandler serves the remediation action log.
type ActionHandler struct {
	actionSvc ports.ActionService
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(actionSvc ports.ActionService) *ActionHandler {
	return &ActionHandler{actionSvc: actionSvc}
}

// RecordAction handles POST /api/v1/deadletter/transactions/:transactionId/actions.
func (h *ActionHandler) RecordAction(c *gin.Context) {
	var req dto.RecordActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	action, err := h.actionSvc.RecordAction(
		c.Request.Context(),
		c.Param("transactionId"),
		operatorID(c),
		req.Action,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, action)
}

// ListActions handles GET /api/v1/deadletter/transactions/:transactionId/actions.
func (h *ActionHandler) ListActions(c *gin.Context) {
	actions, err := h.actionSvc.ListActions(c.Request.Context(), c.Param("transactionId"), operatorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, actions)
}

// ListActionTypes handles GET /api/v1/actions.
func (h *ActionHandler) ListActionTypes(c *gin.Context) {
	response.OK(c, h.actionSvc.ListActionTypes())
}

// operatorID extracts the authenticated operator id set by the JWT middleware.
func operatorID(c *gin.Context) string {
	if v, ok := c.Get(middleware.CtxOperatorID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id.String()
		}
	}
	return ""
}
