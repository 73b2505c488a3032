package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"admin-audit-log/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// appendLockKey is the pg_advisory_xact_lock key that serializes appends
// across every process sharing the database.
const appendLockKey int64 = 0x61646d696e617564

const actionsTable = "admin_actions"

// schemaStatements create the log table and make it append-only.
// created_at and signed_at stay text so the signed strings round-trip
// byte for byte; details is json, not jsonb, for the same reason.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admin_actions (
		seq            BIGSERIAL PRIMARY KEY,
		id             TEXT NOT NULL UNIQUE,
		admin_id       TEXT NOT NULL,
		admin_email    TEXT NOT NULL,
		session_id     TEXT NOT NULL,
		action_type    TEXT NOT NULL,
		target_type    TEXT NOT NULL,
		target_id      TEXT NOT NULL,
		details        JSON NOT NULL,
		ip             TEXT NOT NULL,
		user_agent     TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		hmac_signature TEXT NOT NULL,
		signed_at      TEXT NOT NULL
	)`,
	`CREATE OR REPLACE FUNCTION admin_actions_append_only() RETURNS trigger AS $$
	BEGIN
		RAISE EXCEPTION 'admin_actions is append-only';
	END;
	$$ LANGUAGE plpgsql`,
	`CREATE OR REPLACE TRIGGER admin_actions_append_only
		BEFORE UPDATE OR DELETE ON admin_actions
		FOR EACH ROW EXECUTE FUNCTION admin_actions_append_only()`,
}

// ActionRepo implements ports.ActionStore on PostgreSQL.
type ActionRepo struct {
	pool Pool
	tx   *Transactor

	schemaMu    sync.Mutex
	schemaReady bool
}

// NewActionRepo creates a new ActionRepo. The table is created on first use.
func NewActionRepo(pool Pool) *ActionRepo {
	return &ActionRepo{pool: pool, tx: NewTransactor(pool)}
}

// EnsureSchema creates the table and its append-only trigger if missing.
// A failed attempt is retried on the next call.
func (r *ActionRepo) EnsureSchema(ctx context.Context) error {
	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()
	if r.schemaReady {
		return nil
	}
	for _, stmt := range schemaStatements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure admin_actions schema: %w", err)
		}
	}
	r.schemaReady = true
	return nil
}

// LoadAll returns every record in insertion order. A row whose details do
// not decode is returned with DecodeError set.
func (r *ActionRepo) LoadAll(ctx context.Context) ([]domain.ActionRecord, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, admin_id, admin_email, session_id, action_type, target_type, target_id,
		details, ip, user_agent, created_at, hmac_signature, signed_at
		FROM admin_actions ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load admin actions: %w", err)
	}
	defer rows.Close()

	records := []domain.ActionRecord{}
	for rows.Next() {
		var (
			rec     domain.ActionRecord
			details []byte
		)
		if err := rows.Scan(
			&rec.ID, &rec.AdminID, &rec.AdminEmail, &rec.SessionID, &rec.ActionType,
			&rec.TargetType, &rec.TargetID, &details, &rec.IP, &rec.UserAgent,
			&rec.CreatedAt, &rec.HMACSignature, &rec.SignedAt,
		); err != nil {
			return nil, fmt.Errorf("scan admin action: %w", err)
		}
		if err := json.Unmarshal(details, &rec.Details); err != nil {
			rec.DecodeError = "details: " + err.Error()
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin actions: %w", err)
	}
	return records, nil
}

// Append inserts record inside a transaction holding the append lock.
func (r *ActionRepo) Append(ctx context.Context, record domain.ActionRecord) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}

	details, err := marshalDetails(record.Details)
	if err != nil {
		return err
	}

	return r.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		return insertAction(ctx, tx, record, details)
	})
}

func insertAction(ctx context.Context, tx pgx.Tx, record domain.ActionRecord, details string) error {
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", appendLockKey); err != nil {
		return fmt.Errorf("acquire append lock: %w", err)
	}

	query := `INSERT INTO admin_actions (id, admin_id, admin_email, session_id, action_type, target_type,
		target_id, details, ip, user_agent, created_at, hmac_signature, signed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		record.ID, record.AdminID, record.AdminEmail, record.SessionID, record.ActionType,
		record.TargetType, record.TargetID, details, record.IP, record.UserAgent,
		record.CreatedAt, record.HMACSignature, record.SignedAt,
	)
	if err != nil {
		return fmt.Errorf("insert admin action: %w", err)
	}
	return nil
}

func marshalDetails(d domain.Details) (string, error) {
	if d == nil {
		return "null", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode details: %w", err)
	}
	return string(data), nil
}
