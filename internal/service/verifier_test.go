package service

import (
	"context"
	"fmt"
	"testing"

	"admin-audit-log/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedBatch(t *testing.T, s *HMACSigner, n int) []domain.ActionRecord {
	t.Helper()
	records := make([]domain.ActionRecord, n)
	for i := range records {
		r := newTestRecord()
		r.ID = fmt.Sprintf("1767225600000-%08x", i)
		records[i] = signed(t, s, r)
	}
	return records
}

func TestVerifier_AllValid(t *testing.T) {
	s := newTestSigner(t)
	records := signedBatch(t, s, 10)

	report := NewVerifier(s, 1, 0).Verify(context.Background(), records)

	assert.Equal(t, 10, report.Total)
	assert.Equal(t, 10, report.Valid)
	assert.Equal(t, 0, report.Invalid)
	assert.Empty(t, report.Errors)
	assert.False(t, report.Truncated)
}

func TestVerifier_ParallelReportsErrorsInAppendOrder(t *testing.T) {
	s := newTestSigner(t)
	records := signedBatch(t, s, 3*verifyChunk+17)

	tampered := []int{5, verifyChunk + 1, 2 * verifyChunk, 3*verifyChunk + 16}
	for _, i := range tampered {
		records[i].AdminEmail = "mallory@x.com"
	}

	report := NewVerifier(s, 4, 0).Verify(context.Background(), records)

	assert.Equal(t, len(records), report.Total)
	assert.Equal(t, len(records)-len(tampered), report.Valid)
	assert.Equal(t, len(tampered), report.Invalid)
	require.Len(t, report.Errors, len(tampered))
	for n, i := range tampered {
		assert.Equal(t, records[i].ID, report.Errors[n].ID)
		assert.Equal(t, domain.ReasonInvalidSignature, report.Errors[n].Reason)
	}
	assert.Equal(t, report.Total, report.Valid+report.Invalid)
}

func TestVerifier_MalformedRecordIsReportedAlone(t *testing.T) {
	s := newTestSigner(t)
	records := signedBatch(t, s, 3)
	records[1].DecodeError = "details: cannot unmarshal string"

	report := NewVerifier(s, 2, 0).Verify(context.Background(), records)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, records[1].ID, report.Errors[0].ID)
	assert.Equal(t, domain.ReasonMalformedRecord+": details: cannot unmarshal string", report.Errors[0].Reason)
}

func TestVerifier_MissingSignatureIsInvalid(t *testing.T) {
	s := newTestSigner(t)
	r := newTestRecord()

	report := NewVerifier(s, 1, 0).Verify(context.Background(), []domain.ActionRecord{r})

	assert.Equal(t, 1, report.Invalid)
}

func TestVerifier_Truncates(t *testing.T) {
	s := newTestSigner(t)
	records := signedBatch(t, s, 20)
	records[15].TargetID = "tampered beyond the cap"

	report := NewVerifier(s, 2, 10).Verify(context.Background(), records)

	assert.True(t, report.Truncated)
	assert.Equal(t, 10, report.Total)
	assert.Equal(t, 10, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestVerifier_CancelledContext(t *testing.T) {
	s := newTestSigner(t)
	records := signedBatch(t, s, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := NewVerifier(s, 2, 0).Verify(ctx, records)

	assert.Equal(t, 0, report.Total)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Reason, "verification aborted")
}

func TestVerifier_NonPositiveWorkers(t *testing.T) {
	v := NewVerifier(newTestSigner(t), 0, 0)
	assert.Equal(t, 1, v.workers)
}
