package service

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"admin-audit-log/internal/core/domain"
)

// csvColumns is the export column order. The signature columns are included
// so an export can be re-verified offline.
var csvColumns = []string{
	"id", "createdAt", "adminEmail", "sessionId", "actionType", "targetType",
	"targetId", "ip", "userAgent", "details", "hmacSignature", "signedAt",
}

// WriteActionsCSV writes records as CSV in the order given. The header is
// bare; every data field is double-quoted with embedded quotes doubled.
func WriteActionsCSV(w io.Writer, records []domain.ActionRecord) error {
	if _, err := io.WriteString(w, strings.Join(csvColumns, ",")+"\n"); err != nil {
		return err
	}
	for i := range records {
		row, err := csvRow(&records[i])
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ExportCSV renders records to a CSV string.
func ExportCSV(records []domain.ActionRecord) (string, error) {
	var buf bytes.Buffer
	if err := WriteActionsCSV(&buf, records); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func csvRow(r *domain.ActionRecord) (string, error) {
	details, err := detailsJSON(r.Details)
	if err != nil {
		return "", err
	}
	fields := []string{
		r.ID, r.CreatedAt, r.AdminEmail, r.SessionID, r.ActionType, r.TargetType,
		r.TargetID, r.IP, r.UserAgent, details, r.HMACSignature, r.SignedAt,
	}
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String(), nil
}

func detailsJSON(d domain.Details) (string, error) {
	if d == nil {
		return "null", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
