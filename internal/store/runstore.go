package store

import "go-order-pipeline/internal/model"

// RunStore exposes the package-level run persistence functions as a value,
// matching the pipeline's Store interface.
type RunStore struct{}

func (RunStore) UpdateRunStatus(runID, status string) error {
	return UpdateRunStatus(runID, status)
}

func (RunStore) SaveRunError(runID string, runErr error) error {
	return SaveRunError(runID, runErr)
}

func (RunStore) SaveRunLog(runID, stage, level, message string, fields map[string]interface{}) error {
	return SaveRunLog(runID, stage, level, message, fields)
}

func (RunStore) SaveRunResult(runID string, result model.OrderResult, report string) error {
	return SaveRunResult(runID, result, report)
}
