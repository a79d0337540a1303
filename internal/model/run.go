package model

import "time"

// RunRecord tracks one processing run of a submission
type RunRecord struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	Status       string    `json:"status"` // pending, running, completed, failed
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RunError is one error recorded against a run
type RunError struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// RunLog is one stage-level log entry recorded against a run
type RunLog struct {
	ID        int64                  `json:"id"`
	RunID     string                 `json:"run_id"`
	Stage     string                 `json:"stage"` // fetch, extract, reshape, aggregate, collapse, emit
	Level     string                 `json:"level"` // info, warning, error
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
