package advisor

import (
	"database/sql"
	"fmt"
	"time"
)

// Recommendation sources recorded in the audit log.
const (
	SourceAI   = "ai"
	SourceMock = "mock"
)

// InferenceRecord is one audited recommendation attempt. Only outcome
// metadata is stored; the recommendation itself is never persisted.
type InferenceRecord struct {
	ID            int64  `json:"id"`
	CreatedAt     string `json:"created_at"`
	Source        string `json:"source"`
	Model         string `json:"model,omitempty"`
	InputChars    int    `json:"input_chars"`
	DurationMS    int64  `json:"duration_ms"`
	FailureReason string `json:"failure_reason,omitempty"`
}

func initAuditSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS inference_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		source TEXT NOT NULL,
		model TEXT,
		input_chars INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		failure_reason TEXT
	)`)
	return err
}

// recordInference appends one audit row. A nil db makes this a no-op so
// the service runs without the audit store.
func (c *Core) recordInference(source, model string, inputChars int, duration time.Duration, failureReason string) {
	if c.db == nil {
		return
	}
	var reason any
	if failureReason != "" {
		reason = failureReason
	}
	_, err := c.db.Exec(
		`INSERT INTO inference_log (source, model, input_chars, duration_ms, failure_reason)
		 VALUES (?, ?, ?, ?, ?)`,
		source, model, inputChars, duration.Milliseconds(), reason,
	)
	if err != nil {
		c.Logger().Warn("failed to record inference", "err", err)
	}
}

// GetInferenceLog returns up to limit recent audit rows, newest first.
func (c *Core) GetInferenceLog(limit int) ([]InferenceRecord, error) {
	if c.db == nil {
		return []InferenceRecord{}, nil
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := c.db.Query(
		`SELECT id, created_at, source, model, input_chars, duration_ms, failure_reason
		 FROM inference_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, WrapError(ErrCodeDatabase, "query inference_log", err)
	}
	defer rows.Close()

	records := []InferenceRecord{}
	for rows.Next() {
		var (
			rec           InferenceRecord
			model, reason sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Source, &model, &rec.InputChars, &rec.DurationMS, &reason); err != nil {
			return nil, WrapError(ErrCodeDatabase, "scan inference_log row", err)
		}
		rec.Model = model.String
		rec.FailureReason = reason.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inference_log: %w", err)
	}
	return records, nil
}
