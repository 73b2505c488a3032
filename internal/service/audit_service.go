package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"admin-audit-log/internal/core/domain"
	"admin-audit-log/internal/core/ports"
	"admin-audit-log/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuditOption customizes the audit service.
type AuditOption func(*auditService)

// WithAppendLocker adds a cross-process lock around each append, on top of
// the in-process mutex.
func WithAppendLocker(locker ports.AppendLocker, wait time.Duration) AuditOption {
	return func(s *auditService) {
		s.locker = locker
		s.lockWait = wait
	}
}

// WithMetrics reports append and verification outcomes to m.
func WithMetrics(m ports.AuditMetrics) AuditOption {
	return func(s *auditService) { s.metrics = m }
}

// WithVerifier replaces the default single-worker, uncapped verifier.
func WithVerifier(v *Verifier) AuditOption {
	return func(s *auditService) { s.verifier = v }
}

// WithClock overrides time.Now (tests).
func WithClock(now func() time.Time) AuditOption {
	return func(s *auditService) { s.now = now }
}

type auditService struct {
	store    ports.ActionStore
	signer   ports.Signer
	verifier *Verifier
	locker   ports.AppendLocker
	lockWait time.Duration
	metrics  ports.AuditMetrics
	log      zerolog.Logger
	now      func() time.Time

	// appendMu makes this process a single logical writer.
	appendMu sync.Mutex
}

// NewAuditService creates the audit service over store, signing with signer.
func NewAuditService(store ports.ActionStore, signer ports.Signer, log zerolog.Logger, opts ...AuditOption) ports.AuditService {
	s := &auditService{
		store:  store,
		signer: signer,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.verifier == nil {
		s.verifier = NewVerifier(signer, 1, 0)
	}
	return s
}

// AppendAction validates and defaults in, signs the resulting record and
// persists it after every existing record. Nothing is persisted on failure.
func (s *auditService) AppendAction(ctx context.Context, in domain.ActionInput) (*domain.ActionRecord, error) {
	if err := in.Validate(); err != nil {
		s.appendFailed("validation")
		return nil, apperror.Validation(err.Error())
	}
	in = in.WithDefaults()

	now := s.now()
	record := domain.ActionRecord{
		ID:         newActionID(now),
		AdminID:    in.AdminID,
		AdminEmail: in.AdminEmail,
		SessionID:  in.SessionID,
		ActionType: in.ActionType,
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		Details:    in.Details,
		IP:         in.IP,
		UserAgent:  in.UserAgent,
		CreatedAt:  domain.FormatTimestamp(now),
	}

	sig, err := s.signer.Sign(&record)
	if err != nil {
		s.appendFailed("sign")
		return nil, apperror.ErrSignFailure(err)
	}
	record.HMACSignature = sig
	record.SignedAt = domain.FormatTimestamp(s.now())

	release, err := s.lock(ctx)
	if err != nil {
		s.appendFailed("lock")
		return nil, err
	}
	defer release()

	if err := s.store.Append(ctx, record); err != nil {
		s.appendFailed("store")
		s.log.Error().Err(err).Str("action_type", record.ActionType).Msg("failed to persist admin action")
		return nil, apperror.ErrStoreIO(err)
	}

	if s.metrics != nil {
		s.metrics.AppendSucceeded(record.ActionType)
	}
	s.log.Info().
		Str("record_id", record.ID).
		Str("action_type", record.ActionType).
		Str("admin_id", record.AdminID).
		Str("target_type", record.TargetType).
		Str("target_id", record.TargetID).
		Msg("admin action recorded")

	return &record, nil
}

// GetActions returns every record matching filter, newest first.
func (s *auditService) GetActions(ctx context.Context, filter domain.ActionFilter) ([]domain.ActionRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterActions(records, filter), nil
}

// GetAction returns the record with the given id.
func (s *auditService) GetAction(ctx context.Context, id string) (*domain.ActionRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, apperror.ErrActionNotFound(id)
}

// GetActionTypes returns the distinct action types in the log, sorted.
func (s *auditService) GetActionTypes(ctx context.Context) ([]string, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctActionTypes(records), nil
}

// ExportActionsAsCSV renders the filtered records, newest first, as CSV.
func (s *auditService) ExportActionsAsCSV(ctx context.Context, filter domain.ActionFilter) (string, error) {
	records, err := s.GetActions(ctx, filter)
	if err != nil {
		return "", err
	}
	out, err := ExportCSV(records)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("rendering csv: %w", err))
	}
	return out, nil
}

// VerifyAllActions sweeps the whole log. Load failures are reported inside
// the result rather than returned, so an unreadable log is distinguishable
// from an empty one.
func (s *auditService) VerifyAllActions(ctx context.Context) *domain.IntegrityReport {
	records, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("integrity sweep could not load the audit log")
		report := FailedReport("failed to load audit log: " + err.Error())
		s.verifyCompleted(report)
		return report
	}

	report := s.verifier.Verify(ctx, records)
	for _, e := range report.Errors {
		if e.ID != "" {
			s.log.Warn().Str("record_id", e.ID).Str("action_type", e.ActionType).Msg(e.Reason)
		}
	}
	s.log.Info().
		Int("total", report.Total).
		Int("valid", report.Valid).
		Int("invalid", report.Invalid).
		Bool("truncated", report.Truncated).
		Msg("integrity sweep finished")

	s.verifyCompleted(report)
	return report
}

// VerifyAction re-verifies one record.
func (s *auditService) VerifyAction(ctx context.Context, id string) (*domain.RecordVerification, error) {
	record, err := s.GetAction(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, recomputed := s.signer.Verify(record)
	return &domain.RecordVerification{
		ID:                  record.ID,
		IsValid:             ok,
		StoredSignature:     record.HMACSignature,
		RecomputedSignature: recomputed,
	}, nil
}

func (s *auditService) load(ctx context.Context) ([]domain.ActionRecord, error) {
	records, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load audit log")
		return nil, apperror.ErrStoreIO(err)
	}
	return records, nil
}

func (s *auditService) lock(ctx context.Context) (func(), error) {
	s.appendMu.Lock()
	if s.locker == nil {
		return s.appendMu.Unlock, nil
	}

	release, err := s.locker.Acquire(ctx, s.lockWait)
	if err != nil {
		s.appendMu.Unlock()
		if errors.Is(err, ports.ErrLockNotAcquired) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.ErrAppendLockTimeout(err)
		}
		return nil, apperror.ErrStoreIO(fmt.Errorf("acquiring append lock: %w", err))
	}
	return func() {
		release()
		s.appendMu.Unlock()
	}, nil
}

func (s *auditService) appendFailed(stage string) {
	if s.metrics != nil {
		s.metrics.AppendFailed(stage)
	}
}

func (s *auditService) verifyCompleted(report *domain.IntegrityReport) {
	if s.metrics != nil {
		s.metrics.VerifyCompleted(report)
	}
}

// newActionID is the append timestamp in milliseconds plus a random suffix.
func newActionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
