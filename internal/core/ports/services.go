package ports

import (
	"context"
	"time"

	"admin-audit-log/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// Signer binds a record's content to the process signing key.
type Signer interface {
	// Sign returns the hex HMAC-SHA256 over the record's canonical form,
	// ignoring HMACSignature and SignedAt.
	Sign(record *domain.ActionRecord) (string, error)
	// Verify recomputes the signature and compares it in constant time.
	Verify(record *domain.ActionRecord) (valid bool, recomputed string)
}

// AuditService is the boundary the route layer calls.
type AuditService interface {
	AppendAction(ctx context.Context, in domain.ActionInput) (*domain.ActionRecord, error)
	GetActions(ctx context.Context, filter domain.ActionFilter) ([]domain.ActionRecord, error)
	GetAction(ctx context.Context, id string) (*domain.ActionRecord, error)
	GetActionTypes(ctx context.Context) ([]string, error)
	ExportActionsAsCSV(ctx context.Context, filter domain.ActionFilter) (string, error)
	VerifyAllActions(ctx context.Context) *domain.IntegrityReport
	VerifyAction(ctx context.Context, id string) (*domain.RecordVerification, error)
}

// TokenService issues and validates admin bearer tokens.
type TokenService interface {
	Generate(claims AdminClaims) (string, time.Time, error)
	Validate(tokenString string) (*AdminClaims, error)
}

// AdminClaims identifies the operator behind a request.
type AdminClaims struct {
	AdminID   string
	Email     string
	SessionID string
}

// AuditMetrics receives counters from the audit service. Nil-safe
// implementations are not required; the service skips a nil AuditMetrics.
type AuditMetrics interface {
	AppendSucceeded(actionType string)
	AppendFailed(stage string)
	VerifyCompleted(report *domain.IntegrityReport)
}
