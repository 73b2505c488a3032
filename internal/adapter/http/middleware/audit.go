package middleware

import (
	"net/http"

	"admin-audit-log/internal/core/domain"
	"admin-audit-log/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Action types recorded when an operator reads the log in bulk.
const (
	ActionAuditLogExport = "AUDIT_LOG_EXPORT"
	ActionAuditLogVerify = "AUDIT_LOG_VERIFY"
	TargetTypeAuditLog   = "AUDIT_LOG"
)

// CtxAuditDetails lets a handler attach details to the self-audit record.
const CtxAuditDetails = "audit_details"

// SelfAudit records a successful export or verification as an admin action
// of its own. It runs after the handler and never changes the response.
func SelfAudit(auditSvc ports.AuditService, actionType string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < http.StatusOK || c.Writer.Status() >= http.StatusMultipleChoices {
			return
		}

		details := domain.Details{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}
		if q := c.Request.URL.RawQuery; q != "" {
			details["query"] = q
		}
		if extra, ok := c.Get(CtxAuditDetails); ok {
			if m, ok := extra.(map[string]any); ok {
				for k, v := range m {
					details[k] = v
				}
			}
		}

		targetID := c.Param("id")
		actor := Actor(c)
		_, err := auditSvc.AppendAction(c.Request.Context(), domain.ActionInput{
			AdminID:    actor.AdminID,
			AdminEmail: actor.Email,
			SessionID:  actor.SessionID,
			ActionType: actionType,
			TargetType: TargetTypeAuditLog,
			TargetID:   targetID,
			Details:    details,
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		})
		if err != nil {
			log.Error().Err(err).Str("action_type", actionType).Str("admin_id", actor.AdminID).Msg("failed to record self-audit action")
		}
	}
}
