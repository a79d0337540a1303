package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager handles output file organization for run artifacts
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateRunOutputDir creates a per-run directory for output files
func (om *OutputManager) CreateRunOutputDir(runID string) (string, error) {
	runDir := filepath.Join(om.BaseOutputDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}

	return runDir, nil
}

// RunFilePath returns the full path for a named file inside a run directory,
// creating the directory if needed. Path separators in the name are dropped.
func (om *OutputManager) RunFilePath(runID, fileName string) (string, error) {
	runDir, err := om.CreateRunOutputDir(runID)
	if err != nil {
		return "", err
	}

	return filepath.Join(runDir, filepath.Base(fileName)), nil
}

// WriteJSON serializes data as indented JSON into the run directory and
// returns the written path.
func (om *OutputManager) WriteJSON(runID, fileName string, data interface{}) (string, error) {
	path, err := om.RunFilePath(runID, fileName)
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}

	return path, nil
}

// WriteText writes a plain-text artifact into the run directory and returns
// the written path.
func (om *OutputManager) WriteText(runID, fileName, content string) (string, error) {
	path, err := om.RunFilePath(runID, fileName)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}
