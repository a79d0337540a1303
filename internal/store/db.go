package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-order-pipeline/internal/model"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the run tables.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		submission_id TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	logTable := `
	CREATE TABLE IF NOT EXISTS run_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		stage TEXT,
		level TEXT,
		message TEXT,
		fields_json TEXT,
		created_at DATETIME
	);
	`
	resultTable := `
	CREATE TABLE IF NOT EXISTS run_results (
		run_id TEXT PRIMARY KEY,
		result_json TEXT,
		report_text TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{runTable, errorTable, logTable, resultTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// CloseDB closes the database handle.
func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveRun stores a new processing run in pending state.
func SaveRun(runID, submissionID string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, submission_id, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, submissionID, "pending", now, now)
	return err
}

// UpdateRunStatus updates a run's status.
func UpdateRunStatus(runID, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunError records an error against a run.
func SaveRunError(runID string, runErr error) error {
	if runErr == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, runErr.Error(), now)
	return err
}

// SaveRunLog records a stage-level log entry against a run.
func SaveRunLog(runID, stage, level, message string, fields map[string]interface{}) error {
	var fieldsJSON []byte
	if len(fields) > 0 {
		var err error
		fieldsJSON, err = json.Marshal(fields)
		if err != nil {
			return err
		}
	}
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO run_logs (run_id, stage, level, message, fields_json, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, stage, level, message, string(fieldsJSON), now)
	return err
}

// SaveRunResult persists the final order result and its text report.
func SaveRunResult(runID string, result model.OrderResult, report string) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`INSERT OR REPLACE INTO run_results (run_id, result_json, report_text, created_at) VALUES (?, ?, ?, ?)`,
		runID, string(resultJSON), report, now)
	return err
}

// ListRuns returns all runs, newest first.
func ListRuns() ([]model.RunRecord, error) {
	rows, err := db.Query(`SELECT id, submission_id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.RunRecord
	for rows.Next() {
		var run model.RunRecord
		if err := rows.Scan(&run.ID, &run.SubmissionID, &run.Status, &run.CreatedAt, &run.UpdatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun fetches a single run by id.
func GetRun(runID string) (model.RunRecord, error) {
	var run model.RunRecord
	err := db.QueryRow(`SELECT id, submission_id, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&run.ID, &run.SubmissionID, &run.Status, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return model.RunRecord{}, err
	}
	return run, nil
}

// GetRunErrors returns all errors recorded against a run.
func GetRunErrors(runID string) ([]model.RunError, error) {
	rows, err := db.Query(`SELECT id, run_id, error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []model.RunError
	for rows.Next() {
		var e model.RunError
		if err := rows.Scan(&e.ID, &e.RunID, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		errors = append(errors, e)
	}
	return errors, rows.Err()
}

// GetRunLogs returns all stage logs recorded against a run.
func GetRunLogs(runID string) ([]model.RunLog, error) {
	rows, err := db.Query(`SELECT id, run_id, stage, level, message, fields_json, created_at FROM run_logs WHERE run_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []model.RunLog
	for rows.Next() {
		var l model.RunLog
		var fieldsJSON string
		if err := rows.Scan(&l.ID, &l.RunID, &l.Stage, &l.Level, &l.Message, &fieldsJSON, &l.CreatedAt); err != nil {
			return nil, err
		}
		if fieldsJSON != "" {
			if err := json.Unmarshal([]byte(fieldsJSON), &l.Fields); err != nil {
				return nil, fmt.Errorf("corrupt run log fields: %w", err)
			}
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// GetRunResult fetches the persisted order result of a run.
func GetRunResult(runID string) (model.OrderResult, error) {
	var resultJSON string
	err := db.QueryRow(`SELECT result_json FROM run_results WHERE run_id = ?`, runID).Scan(&resultJSON)
	if err != nil {
		return model.OrderResult{}, err
	}

	var result model.OrderResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return model.OrderResult{}, fmt.Errorf("corrupt run result: %w", err)
	}
	return result, nil
}

// GetRunReport fetches the persisted text report of a run.
func GetRunReport(runID string) (string, error) {
	var report string
	err := db.QueryRow(`SELECT report_text FROM run_results WHERE run_id = ?`, runID).Scan(&report)
	if err != nil {
		return "", err
	}
	return report, nil
}
