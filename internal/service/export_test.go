package service

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"admin-audit-log/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "id,createdAt,adminEmail,sessionId,actionType,targetType,targetId,ip,userAgent,details,hmacSignature,signedAt"

func TestExportCSV_EmptyIsHeaderOnly(t *testing.T) {
	out, err := ExportCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, csvHeader+"\n", out)
}

func TestExportCSV_QuotesEveryField(t *testing.T) {
	r := domain.ActionRecord{
		ID:            "1",
		AdminEmail:    "a@x.com",
		SessionID:     "s",
		ActionType:    "NOTE",
		TargetType:    "UNKNOWN",
		TargetID:      "unknown",
		IP:            "unknown",
		UserAgent:     `Agent "quoted", v1`,
		Details:       domain.Details{"note": "say \"hi\"", "html": "<b>"},
		CreatedAt:     "2026-01-01T00:00:00.000Z",
		HMACSignature: "ab",
		SignedAt:      "2026-01-01T00:00:00.000Z",
	}

	out, err := ExportCSV([]domain.ActionRecord{r})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, csvHeader, lines[0])
	assert.Equal(t,
		`"1","2026-01-01T00:00:00.000Z","a@x.com","s","NOTE","UNKNOWN","unknown","unknown",`+
			`"Agent ""quoted"", v1","{""html"":""<b>"",""note"":""say \""hi\""""}","ab","2026-01-01T00:00:00.000Z"`,
		lines[1])
}

func TestExportCSV_ParsesBackWithStandardReader(t *testing.T) {
	records := []domain.ActionRecord{
		{ID: "2", AdminEmail: "b@x.com", ActionType: "PRICE_UPDATE", UserAgent: "line\nbreak",
			Details: domain.Details{"price": json.Number("12.50")}},
		{ID: "1", AdminEmail: "a@x.com", ActionType: "LOGIN"},
	}

	out, err := ExportCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 12)

	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "line\nbreak", rows[1][8])
	assert.Equal(t, `{"price":12.50}`, rows[1][9])
	assert.Equal(t, "null", rows[2][9], "nil details export as they are signed")
}

func TestExportCSV_UnserializableDetails(t *testing.T) {
	_, err := ExportCSV([]domain.ActionRecord{{ID: "1", Details: domain.Details{"c": make(chan int)}}})
	assert.Error(t, err)
}
