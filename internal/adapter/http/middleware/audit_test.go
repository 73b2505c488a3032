package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-audit-log/internal/core/domain"
	"admin-audit-log/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func withActor(c *gin.Context) {
	c.Set(CtxAdminID, "a1")
	c.Set(CtxAdminEmail, "a@x.com")
	c.Set(CtxSessionID, "sess-1")
	c.Next()
}

func TestSelfAudit_RecordsExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	mockAudit.EXPECT().AppendAction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in domain.ActionInput) (*domain.ActionRecord, error) {
			assert.Equal(t, ActionAuditLogExport, in.ActionType)
			assert.Equal(t, TargetTypeAuditLog, in.TargetType)
			assert.Equal(t, "a1", in.AdminID)
			assert.Equal(t, "a@x.com", in.AdminEmail)
			assert.Equal(t, "sess-1", in.SessionID)
			assert.Equal(t, "GET", in.Details["method"])
			assert.Equal(t, "actionType=LOGIN", in.Details["query"])
			assert.Equal(t, 3, in.Details["rows"])
			assert.Equal(t, "test-agent", in.UserAgent)
			return &domain.ActionRecord{ID: "x"}, nil
		},
	)

	r := gin.New()
	r.GET("/export", withActor, SelfAudit(mockAudit, ActionAuditLogExport, zerolog.Nop()), func(c *gin.Context) {
		c.Set(CtxAuditDetails, map[string]any{"rows": 3})
		c.String(http.StatusOK, "csv")
	})

	req := httptest.NewRequest(http.MethodGet, "/export?actionType=LOGIN", nil)
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelfAudit_UsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	mockAudit.EXPECT().AppendAction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in domain.ActionInput) (*domain.ActionRecord, error) {
			assert.Equal(t, ActionAuditLogVerify, in.ActionType)
			assert.Equal(t, "rec-1", in.TargetID)
			return &domain.ActionRecord{}, nil
		},
	)

	r := gin.New()
	r.GET("/actions/:id/verify", withActor, SelfAudit(mockAudit, ActionAuditLogVerify, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"isValid": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/actions/rec-1/verify", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelfAudit_SkipsFailedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations - AppendAction must not be called for a failed export

	r := gin.New()
	r.GET("/export", withActor, SelfAudit(mockAudit, ActionAuditLogExport, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "SYS_001"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSelfAudit_AppendFailureDoesNotChangeResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	mockAudit.EXPECT().AppendAction(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	r := gin.New()
	r.GET("/verify", withActor, SelfAudit(mockAudit, ActionAuditLogVerify, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total": 0})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/verify", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":0}`, w.Body.String())
}
