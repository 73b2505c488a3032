package service

import (
	"context"

	"admin-audit-log/internal/core/domain"
	"admin-audit-log/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// verifyChunk is the number of records a single worker checks per task.
const verifyChunk = 256

// Verifier re-checks record signatures. It is read-only.
type Verifier struct {
	signer     ports.Signer
	workers    int
	maxRecords int
}

// NewVerifier creates a Verifier. maxRecords <= 0 verifies the whole log;
// workers <= 0 runs single-threaded.
func NewVerifier(signer ports.Signer, workers, maxRecords int) *Verifier {
	if workers <= 0 {
		workers = 1
	}
	return &Verifier{signer: signer, workers: workers, maxRecords: maxRecords}
}

// Verify checks records and reports invalid ones in append order.
// If ctx is cancelled mid-sweep the report carries zero totals and a single
// error describing the cancellation.
func (v *Verifier) Verify(ctx context.Context, records []domain.ActionRecord) *domain.IntegrityReport {
	report := &domain.IntegrityReport{Errors: []domain.IntegrityError{}}
	if v.maxRecords > 0 && len(records) > v.maxRecords {
		records = records[:v.maxRecords]
		report.Truncated = true
	}

	valid := make([]bool, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)

	for start := 0; start < len(records); start += verifyChunk {
		end := min(start+verifyChunk, len(records))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				valid[i], _ = v.signer.Verify(&records[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FailedReport("verification aborted: " + err.Error())
	}

	report.Total = len(records)
	for i := range records {
		if valid[i] {
			report.Valid++
			continue
		}
		report.Invalid++
		reason := domain.ReasonInvalidSignature
		if records[i].DecodeError != "" {
			reason = domain.ReasonMalformedRecord + ": " + records[i].DecodeError
		}
		report.Errors = append(report.Errors, domain.IntegrityError{
			ID:         records[i].ID,
			ActionType: records[i].ActionType,
			CreatedAt:  records[i].CreatedAt,
			Reason:     reason,
		})
	}
	return report
}

// FailedReport is the report for a sweep that could not run.
func FailedReport(reason string) *domain.IntegrityReport {
	return &domain.IntegrityReport{
		Errors: []domain.IntegrityError{{Reason: reason}},
	}
}
