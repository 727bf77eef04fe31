package database

import (
	"database/sql"
	"fmt"
	"time"
)

// RunRecord is one completed pipeline run
type RunRecord struct {
	ID               int64
	RunID            string
	StartedAt        time.Time
	InputPath        string
	Algorithm        string
	VerifyMode       string
	InputSize        int64
	CompressedSize   int64
	DecompressedSize int64
	Characters       int64
	Ones             int64
	Success          bool
	PayloadDigest    *string
}

// RecordRun inserts a run and returns its row id
func (d *DB) RecordRun(run *RunRecord) (int64, error) {
	query := `
	INSERT INTO runs (
		run_id, started_at, input_path, algorithm, verify_mode,
		input_size, compressed_size, decompressed_size,
		characters, ones, success, payload_digest
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var digestVal interface{}
	if run.PayloadDigest != nil {
		digestVal = *run.PayloadDigest
	}

	result, err := d.db.Exec(query,
		run.RunID,
		float64(run.StartedAt.UnixNano())/1e9,
		run.InputPath,
		run.Algorithm,
		run.VerifyMode,
		run.InputSize,
		run.CompressedSize,
		run.DecompressedSize,
		run.Characters,
		run.Ones,
		boolToInt(run.Success),
		digestVal,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first
func (d *DB) ListRuns(limit int) ([]*RunRecord, error) {
	query := `
	SELECT id, run_id, started_at, input_path, algorithm, verify_mode,
		input_size, compressed_size, decompressed_size,
		characters, ones, success, payload_digest
	FROM runs ORDER BY started_at DESC, id DESC LIMIT ?
	`

	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*RunRecord, error) {
	var run RunRecord
	var startedAt float64
	var success int
	var digest sql.NullString

	err := row.Scan(
		&run.ID,
		&run.RunID,
		&startedAt,
		&run.InputPath,
		&run.Algorithm,
		&run.VerifyMode,
		&run.InputSize,
		&run.CompressedSize,
		&run.DecompressedSize,
		&run.Characters,
		&run.Ones,
		&success,
		&digest,
	)
	if err != nil {
		return nil, err
	}

	sec := int64(startedAt)
	run.StartedAt = time.Unix(sec, int64((startedAt-float64(sec))*1e9))
	run.Success = success != 0
	if digest.Valid {
		run.PayloadDigest = &digest.String
	}
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
