package handler

import (
	"fmt"
	"time"

	"admin-audit-log/internal/adapter/http/dto"
	"admin-audit-log/internal/adapter/http/middleware"
	"admin-audit-log/internal/core/ports"
	"admin-audit-log/pkg/apperror"
	"admin-audit-log/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the admin action log.
type AuditHandler struct {
	auditSvc ports.AuditService
	now      func() time.Time
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditSvc ports.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc, now: time.Now}
}

// AppendAction handles POST /api/v1/admin/audit/actions.
func (h *AuditHandler) AppendAction(c *gin.Context) {
	var req dto.AppendActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body: "+err.Error()))
		return
	}
	dto.TrimStrings(&req)

	in := req.ToInput(middleware.Actor(c), c.ClientIP(), c.Request.UserAgent())
	record, err := h.auditSvc.AppendAction(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, record)
}

// ListActions handles GET /api/v1/admin/audit/actions.
func (h *AuditHandler) ListActions(c *gin.Context) {
	var q dto.ListActionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(fmt.Sprintf("invalid query: limit must be 1-%d and offset >= 0", dto.MaxLimit)))
		return
	}
	dto.TrimStrings(&q)

	filter, err := q.Filter()
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	records, err := h.auditSvc.GetActions(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewListActionsResponse(records, q.Limit, q.Offset))
}

// GetAction handles GET /api/v1/admin/audit/actions/:id.
func (h *AuditHandler) GetAction(c *gin.Context) {
	var p dto.ActionIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		response.Error(c, apperror.Validation("invalid action id"))
		return
	}

	record, err := h.auditSvc.GetAction(c.Request.Context(), p.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, record)
}

// VerifyAction handles GET /api/v1/admin/audit/actions/:id/verify.
func (h *AuditHandler) VerifyAction(c *gin.Context) {
	var p dto.ActionIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		response.Error(c, apperror.Validation("invalid action id"))
		return
	}

	result, err := h.auditSvc.VerifyAction(c.Request.Context(), p.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditDetails, map[string]any{"isValid": result.IsValid})
	response.OK(c, result)
}

// ActionTypes handles GET /api/v1/admin/audit/action-types.
func (h *AuditHandler) ActionTypes(c *gin.Context) {
	types, err := h.auditSvc.GetActionTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ActionTypesResponse{ActionTypes: types})
}

// Export handles GET /api/v1/admin/audit/export.
func (h *AuditHandler) Export(c *gin.Context) {
	var q dto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation("invalid query"))
		return
	}
	dto.TrimStrings(&q)

	filter, err := q.Filter()
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	csv, err := h.auditSvc.ExportActionsAsCSV(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("admin-actions-%s.csv", h.now().UTC().Format(time.DateOnly))
	response.CSV(c, filename, csv)
}

// VerifyAll handles GET /api/v1/admin/audit/verify. The report is returned
// with 200 whether or not tampering was found.
func (h *AuditHandler) VerifyAll(c *gin.Context) {
	report := h.auditSvc.VerifyAllActions(c.Request.Context())

	c.Set(middleware.CtxAuditDetails, map[string]any{
		"total":     report.Total,
		"valid":     report.Valid,
		"invalid":   report.Invalid,
		"truncated": report.Truncated,
	})
	response.OK(c, report)
}
