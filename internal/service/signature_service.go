package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"admin-audit-log/internal/core/domain"
)

// ErrEmptySigningKey is returned when the signer is built without a key.
var ErrEmptySigningKey = errors.New("signing key must not be empty")

// SignError reports that a record could not be canonicalized, so no
// signature exists for it.
type SignError struct {
	RecordID string
	Err      error
}

func (e *SignError) Error() string {
	return fmt.Sprintf("signing action %s: %v", e.RecordID, e.Err)
}

func (e *SignError) Unwrap() error {
	return e.Err
}

// HMACSigner implements ports.Signer using HMAC-SHA256 over the canonical
// JSON form of a record.
type HMACSigner struct {
	key []byte
}

// NewHMACSigner creates a signer bound to key. The key is held only in
// memory and is never written to records or logs.
func NewHMACSigner(key string) (*HMACSigner, error) {
	if key == "" {
		return nil, ErrEmptySigningKey
	}
	return &HMACSigner{key: []byte(key)}, nil
}

// Sign computes HMAC-SHA256 of the record's canonical payload.
// Returns lowercase hex-encoded signature.
func (s *HMACSigner) Sign(record *domain.ActionRecord) (string, error) {
	payload, err := CanonicalPayload(record)
	if err != nil {
		return "", &SignError{RecordID: record.ID, Err: err}
	}
	return s.sum(payload), nil
}

// Verify strips the signature fields, re-signs the remainder and compares
// against the stored signature in constant time. A record that cannot be
// canonicalized is reported invalid with an empty recomputed signature.
func (s *HMACSigner) Verify(record *domain.ActionRecord) (bool, string) {
	recomputed, err := s.Sign(record)
	if err != nil {
		return false, ""
	}
	if record.DecodeError != "" {
		return false, recomputed
	}
	return hmac.Equal([]byte(recomputed), []byte(record.HMACSignature)), recomputed
}

// CanonicalPayload returns the exact bytes that are signed for record.
func CanonicalPayload(record *domain.ActionRecord) ([]byte, error) {
	return Canonicalize(record.SignedFields())
}

func (s *HMACSigner) sum(payload []byte) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
