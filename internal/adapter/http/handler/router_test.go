package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"admin-audit-log/internal/adapter/http/handler"
	"admin-audit-log/internal/adapter/metrics"
	"admin-audit-log/internal/adapter/storage/file"
	"admin-audit-log/internal/core/ports"
	"admin-audit-log/internal/service"
	"admin-audit-log/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	token  string
	path   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.NewWithWriter("error", &bytes.Buffer{})

	path := filepath.Join(t.TempDir(), "admin_actions.json")
	store := file.NewStore(path, log)

	signer, err := service.NewHMACSigner("router-test-signing-key")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	auditSvc := service.NewAuditService(store, signer, log,
		service.WithMetrics(metrics.New(reg)),
		service.WithVerifier(service.NewVerifier(signer, 2, 0)),
	)

	tokenSvc := service.NewJWTTokenService("router-test-jwt-secret", time.Hour, "admin-audit-log")
	token, _, err := tokenSvc.Generate(ports.AdminClaims{AdminID: "a1", Email: "alice@example.com", SessionID: "sess-1"})
	require.NoError(t, err)

	router := handler.SetupRouter(handler.RouterDeps{
		AuditSvc:       auditSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{file.NewHealthCheck(store)},
		Metrics:        reg,
		Logger:         log,
	})

	return &testServer{router: router, token: token, path: path}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("User-Agent", "router-test")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	d, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	return d
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	for _, auth := range []string{"", "Bearer ", "Bearer not-a-jwt", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit/actions", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, auth)
		assert.Contains(t, w.Body.String(), "AUTH_001")
	}
}

func TestRouter_AppendListAndGet(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/admin/audit/actions",
		`{"actionType":"PRICE_UPDATE","targetType":"LISTING","targetId":"lst-9","details":{"old":10,"new":12.5}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := data(t, w)
	id := created["id"].(string)
	assert.Equal(t, "a1", created["adminId"])
	assert.Equal(t, "alice@example.com", created["adminEmail"])
	assert.Equal(t, "sess-1", created["sessionId"])
	assert.Equal(t, "router-test", created["userAgent"])
	assert.Len(t, created["hmacSignature"], 64)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = s.do(t, http.MethodPost, "/api/v1/admin/audit/actions", `{"actionType":"LOGIN"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/actions?actionType=PRICE_UPDATE", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := data(t, w)
	assert.Equal(t, float64(1), list["total"])
	items := list["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].(map[string]interface{})["id"])

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/actions/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "LISTING", data(t, w)["targetType"])

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/actions/"+id+"/verify", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data(t, w)["isValid"])

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/action-types", "")
	require.Equal(t, http.StatusOK, w.Code)
	// The single-record verify above recorded itself.
	assert.Equal(t, []interface{}{"AUDIT_LOG_VERIFY", "LOGIN", "PRICE_UPDATE"}, data(t, w)["actionTypes"])

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/actions/1-deadbeef", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ExportRecordsItself(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/admin/audit/actions", `{"actionType":"USER_BAN","details":{"note":"said \"hi\""}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/export?actionType=USER_BAN", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="admin-actions-`))

	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,createdAt,"))
	assert.Contains(t, lines[1], `"USER_BAN"`)
	assert.Contains(t, lines[1], `"{""note"":""said \""hi\""""}"`)

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/actions?actionType=AUDIT_LOG_EXPORT", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := data(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	rec := items[0].(map[string]interface{})
	assert.Equal(t, "AUDIT_LOG", rec["targetType"])
	assert.Equal(t, "a1", rec["adminId"])
	details := rec["details"].(map[string]interface{})
	assert.Equal(t, "/api/v1/admin/audit/export", details["path"])
	assert.Equal(t, "actionType=USER_BAN", details["query"])
}

func TestRouter_VerifyDetectsTampering(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{"actionType":"LOGIN"}`, `{"actionType":"PRICE_UPDATE","targetId":"lst-1"}`} {
		w := s.do(t, http.MethodPost, "/api/v1/admin/audit/actions", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/v1/admin/audit/verify", "")
	require.Equal(t, http.StatusOK, w.Code)
	report := data(t, w)
	assert.Equal(t, float64(2), report["total"])
	assert.Equal(t, float64(2), report["valid"])
	assert.Equal(t, float64(0), report["invalid"])
	assert.Empty(t, report["errors"])

	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)
	tampered := bytes.Replace(raw, []byte(`"targetId": "lst-1"`), []byte(`"targetId": "lst-2"`), 1)
	require.NotEqual(t, raw, tampered)
	require.NoError(t, os.WriteFile(s.path, tampered, 0o640))

	w = s.do(t, http.MethodGet, "/api/v1/admin/audit/verify", "")
	require.Equal(t, http.StatusOK, w.Code)
	report = data(t, w)
	// Two appended records plus the first sweep's own record.
	assert.Equal(t, float64(3), report["total"])
	assert.Equal(t, float64(1), report["invalid"])
	errs := report["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "PRICE_UPDATE", errs[0].(map[string]interface{})["actionType"])
}

func TestRouter_HealthMetricsAndDocs(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/admin/audit/actions", `{"actionType":"LOGIN"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"file":{"status":"healthy"}`)

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `admin_audit_appends_total{action_type="LOGIN"} 1`)

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/spec", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RejectsOversizedBody(t *testing.T) {
	s := newTestServer(t)

	big := `{"actionType":"LOGIN","details":{"blob":"` + strings.Repeat("x", 2<<20) + `"}}`
	w := s.do(t, http.MethodPost, "/api/v1/admin/audit/actions", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	raw, err := os.ReadFile(s.path)
	if err == nil {
		assert.NotContains(t, string(raw), "blob")
	}
}
