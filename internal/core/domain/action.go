package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used for createdAt and signedAt.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Values filled in when the caller omits provenance or target fields.
const (
	UnknownValue      = "unknown"
	UnknownTargetType = "UNKNOWN"
)

// ErrCorruptLog marks a medium that exists but cannot be decoded. It is
// distinct from a log that has not been created yet, which reads as empty.
var ErrCorruptLog = errors.New("audit log is corrupted")

// Details is the free-form context attached to an action. Numbers are kept as
// json.Number after a round-trip so re-signing sees the original literals.
type Details map[string]any

// UnmarshalJSON decodes with UseNumber.
func (d *Details) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	m := map[string]any{}
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*d = m
	return nil
}

// ActionRecord is one signed entry of the admin action log.
type ActionRecord struct {
	ID            string  `json:"id"`
	AdminID       string  `json:"adminId"`
	AdminEmail    string  `json:"adminEmail"`
	SessionID     string  `json:"sessionId"`
	ActionType    string  `json:"actionType"`
	TargetType    string  `json:"targetType"`
	TargetID      string  `json:"targetId"`
	Details       Details `json:"details"`
	IP            string  `json:"ip"`
	UserAgent     string  `json:"userAgent"`
	CreatedAt     string  `json:"createdAt"`
	HMACSignature string  `json:"hmacSignature"`
	SignedAt      string  `json:"signedAt"`

	// DecodeError is set by a store when the stored form of the record does
	// not match the schema. Such a record never verifies.
	DecodeError string `json:"-"`
}

// SignedFields returns every field covered by the signature, keyed by its
// JSON name. hmacSignature and signedAt are excluded. Nil details sign as
// null, so an empty object and a missing or null value differ.
func (r *ActionRecord) SignedFields() map[string]any {
	var details any
	if r.Details != nil {
		details = map[string]any(r.Details)
	}
	return map[string]any{
		"id":         r.ID,
		"adminId":    r.AdminID,
		"adminEmail": r.AdminEmail,
		"sessionId":  r.SessionID,
		"actionType": r.ActionType,
		"targetType": r.TargetType,
		"targetId":   r.TargetID,
		"details":    details,
		"ip":         r.IP,
		"userAgent":  r.UserAgent,
		"createdAt":  r.CreatedAt,
	}
}

// DecodeActionRecord decodes one stored record. When the stored form does not
// match the schema the record is still returned, carrying every field that
// did decode, with DecodeError set.
func DecodeActionRecord(raw []byte) ActionRecord {
	var r ActionRecord
	err := json.Unmarshal(raw, &r)
	if err == nil {
		return r
	}

	var fields map[string]json.RawMessage
	if ferr := json.Unmarshal(raw, &fields); ferr != nil {
		return ActionRecord{DecodeError: ferr.Error()}
	}
	r = ActionRecord{DecodeError: err.Error()}
	for name, dst := range r.fieldTargets() {
		if v, ok := fields[name]; ok {
			_ = json.Unmarshal(v, dst)
		}
	}
	return r
}

func (r *ActionRecord) fieldTargets() map[string]any {
	return map[string]any{
		"id":            &r.ID,
		"adminId":       &r.AdminID,
		"adminEmail":    &r.AdminEmail,
		"sessionId":     &r.SessionID,
		"actionType":    &r.ActionType,
		"targetType":    &r.TargetType,
		"targetId":      &r.TargetID,
		"details":       &r.Details,
		"ip":            &r.IP,
		"userAgent":     &r.UserAgent,
		"createdAt":     &r.CreatedAt,
		"hmacSignature": &r.HMACSignature,
		"signedAt":      &r.SignedAt,
	}
}

// CreatedTime parses CreatedAt. ok is false for a missing or malformed value.
func (r *ActionRecord) CreatedTime() (time.Time, bool) {
	t, err := ParseTimestamp(r.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ActionInput carries the caller-supplied fields of a new record.
type ActionInput struct {
	AdminID    string
	AdminEmail string
	SessionID  string
	ActionType string
	TargetType string
	TargetID   string
	Details    Details
	IP         string
	UserAgent  string
}

// Validate checks the fields that have no default.
func (in ActionInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.AdminID) == "" {
		missing = append(missing, "adminId")
	}
	if strings.TrimSpace(in.AdminEmail) == "" {
		missing = append(missing, "adminEmail")
	}
	if strings.TrimSpace(in.ActionType) == "" {
		missing = append(missing, "actionType")
	}
	if len(missing) > 0 {
		return errors.New("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// WithDefaults fills optional provenance and target fields.
func (in ActionInput) WithDefaults() ActionInput {
	in.SessionID = orDefault(in.SessionID, UnknownValue)
	in.TargetType = orDefault(in.TargetType, UnknownTargetType)
	in.TargetID = orDefault(in.TargetID, UnknownValue)
	in.IP = orDefault(in.IP, UnknownValue)
	in.UserAgent = orDefault(in.UserAgent, UnknownValue)
	if in.Details == nil {
		in.Details = Details{}
	}
	return in
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// ActionFilter selects records for query and export. Zero fields match all.
type ActionFilter struct {
	AdminEmail string     // case-insensitive substring
	ActionType string     // exact
	SessionID  string     // exact
	From       *time.Time // inclusive
	To         *time.Time // inclusive
}

// FormatTimestamp renders t in TimestampLayout (UTC, milliseconds).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 with or without fractional seconds, and a
// bare YYYY-MM-DD date taken as UTC midnight.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
