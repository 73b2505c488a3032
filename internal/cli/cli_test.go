package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"admin-audit-log/config"
	"admin-audit-log/internal/bootstrap"
	"admin-audit-log/internal/core/domain"
	"admin-audit-log/internal/service"
	"admin-audit-log/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSigningKey = "cli-test-signing-key"
	testJWTSecret  = "cli-test-jwt-secret"
)

// writeConfig points a config file at a fresh log under t.TempDir.
func writeConfig(t *testing.T) (cfgPath, logPath string) {
	t.Helper()
	dir := t.TempDir()
	logPath = filepath.Join(dir, "actions.json")
	cfgPath = filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`storage:
  driver: file
  path: %s
signing:
  key: %s
auth:
  jwt_secret: %s
  issuer: admin-audit-log
`, logPath, testSigningKey, testJWTSecret)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	return cfgPath, logPath
}

func seed(t *testing.T, cfgPath string, inputs ...domain.ActionInput) {
	t.Helper()
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	log := logger.NewWithWriter("error", &bytes.Buffer{})
	stack, err := bootstrap.Open(context.Background(), cfg, log)
	require.NoError(t, err)
	defer stack.Close()

	svc := stack.NewAuditService(cfg, nil, log)
	for _, in := range inputs {
		_, err := svc.AppendAction(context.Background(), in)
		require.NoError(t, err)
	}
}

func run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVerify_IntactLog(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	seed(t, cfgPath,
		domain.ActionInput{AdminID: "a1", AdminEmail: "a@x.com", ActionType: "LOGIN"},
		domain.ActionInput{AdminID: "a1", AdminEmail: "a@x.com", ActionType: "USER_BAN", TargetID: "u-7"},
	)

	code, stdout, stderr := run("verify", "--config", cfgPath)
	require.Equal(t, 0, code, stderr)

	var report domain.IntegrityReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestVerify_EmptyLogPasses(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	code, stdout, _ := run("verify", "--config", cfgPath)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `"total": 0`)
}

func TestVerify_TamperedLogFails(t *testing.T) {
	cfgPath, logPath := writeConfig(t)
	seed(t, cfgPath, domain.ActionInput{AdminID: "a1", AdminEmail: "a@x.com", ActionType: "USER_BAN", TargetID: "u-7"})

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(logPath, bytes.Replace(raw, []byte(`"u-7"`), []byte(`"u-8"`), 1), 0o640))

	code, stdout, stderr := run("verify", "--config", cfgPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, domain.ReasonInvalidSignature)
	assert.Contains(t, stderr, "1 of 1 records invalid")
}

func TestVerify_CorruptLogFails(t *testing.T) {
	cfgPath, logPath := writeConfig(t)
	require.NoError(t, os.WriteFile(logPath, []byte("{not json"), 0o640))

	code, _, stderr := run("verify", "--config", cfgPath, "--quiet")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "integrity check failed: failed to load audit log")
}

func TestVerify_RequiresSigningKey(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  path: "+filepath.Join(dir, "a.json")+"\n"), 0o600))

	code, _, stderr := run("verify", "--config", cfgPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "signing.key is required")
}

func TestExport_FiltersToFile(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	seed(t, cfgPath,
		domain.ActionInput{AdminID: "a1", AdminEmail: "alice@x.com", ActionType: "LOGIN"},
		domain.ActionInput{AdminID: "b2", AdminEmail: "bob@x.com", ActionType: "LOGIN"},
		domain.ActionInput{AdminID: "a1", AdminEmail: "alice@x.com", ActionType: "USER_BAN"},
	)

	out := filepath.Join(t.TempDir(), "export.csv")
	code, stdout, stderr := run("export", "--config", cfgPath, "--admin-email", "ALICE", "--action-type", "LOGIN", "--out", out)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "wrote "+out)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"alice@x.com"`)
	assert.Contains(t, lines[1], `"LOGIN"`)
}

func TestExport_Stdout(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	seed(t, cfgPath, domain.ActionInput{AdminID: "a1", AdminEmail: "a@x.com", ActionType: "LOGIN"})

	code, stdout, _ := run("export", "--config", cfgPath)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "id,createdAt,adminEmail,"))
	assert.Equal(t, 2, strings.Count(stdout, "\n"))
}

func TestExport_UnwritableOutFails(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	seed(t, cfgPath, domain.ActionInput{AdminID: "a1", AdminEmail: "a@x.com", ActionType: "LOGIN"})

	dir := t.TempDir()
	code, stdout, stderr := run("export", "--config", cfgPath, "--out", dir)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "creating "+dir)
	assert.NotContains(t, stderr, "wrote ")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, writeFile(path, "id\n1\n"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(raw))

	require.NoError(t, writeFile(path, "id\n"), "existing file is truncated")
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\n", string(raw))

	assert.Error(t, writeFile(filepath.Join(t.TempDir(), "missing", "out.csv"), "id\n"))
}

func TestExport_InvalidBound(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	code, _, stderr := run("export", "--config", cfgPath, "--from", "2026-02-01", "--to", "2026-01-01")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "from must not be after to")
}

func TestToken_IssuesValidToken(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	code, stdout, stderr := run("token", "--config", cfgPath, "--admin-id", "a1", "--email", "a@x.com", "--session", "s-9")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "expires ")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	claims, err := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry, cfg.Auth.Issuer).
		Validate(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.AdminID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "s-9", claims.SessionID)
}

func TestToken_RequiresIdentity(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	code, _, stderr := run("token", "--config", cfgPath, "--email", "a@x.com")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--admin-id and --email are required")
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := run("rotate-keys")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}
