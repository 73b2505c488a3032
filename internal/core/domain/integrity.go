package domain

// ReasonInvalidSignature is the reason recorded for a signature mismatch.
const ReasonInvalidSignature = "Invalid HMAC signature"

// ReasonMalformedRecord prefixes the reason for a record whose stored form
// could not be decoded.
const ReasonMalformedRecord = "Malformed record"

// IntegrityError describes one record that failed verification, or a sweep
// that could not run at all (ID empty).
type IntegrityError struct {
	ID         string `json:"id,omitempty"`
	ActionType string `json:"actionType,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	Reason     string `json:"reason"`
}

// IntegrityReport is the result of a full-log verification sweep.
// Truncated is set when the sweep stopped at the configured record cap.
type IntegrityReport struct {
	Total     int              `json:"total"`
	Valid     int              `json:"valid"`
	Invalid   int              `json:"invalid"`
	Errors    []IntegrityError `json:"errors"`
	Truncated bool             `json:"truncated,omitempty"`
}

// RecordVerification is the result of re-verifying a single record.
type RecordVerification struct {
	ID                  string `json:"id"`
	IsValid             bool   `json:"isValid"`
	StoredSignature     string `json:"storedSignature"`
	RecomputedSignature string `json:"recomputedSignature"`
}
