package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-order-pipeline/internal/pipeline"
	"go-order-pipeline/internal/store"
)

const routePrefix = "/api/v1/orders/"

// runTimeout bounds one submission fetch + processing cycle.
const runTimeout = 2 * time.Minute

// OrderHandler serves the run management API around one configured pipeline.
type OrderHandler struct {
	Pipeline *pipeline.Pipeline
}

// NewOrderHandler creates the handler set for order processing runs.
func NewOrderHandler(p *pipeline.Pipeline) *OrderHandler {
	return &OrderHandler{Pipeline: p}
}

// CreateRunRequest is the payload of POST /orders.
type CreateRunRequest struct {
	SubmissionID string `json:"submission_id"`
}

// CreateOrderRun starts processing a submission
// @Summary Process a submission
// @Description Create a run that fetches the submission and reshapes it into order lines
// @Tags orders
// @Accept json
// @Produce json
// @Param run body CreateRunRequest true "Submission to process"
// @Success 200 {object} map[string]interface{} "Run created"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /orders [post]
func (h *OrderHandler) CreateOrderRun(w http.ResponseWriter, r *http.Request) {
	var req CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if req.SubmissionID == "" {
		http.Error(w, "submission_id is required", http.StatusBadRequest)
		return
	}

	runID := uuid.New().String()

	if err := store.SaveRun(runID, req.SubmissionID); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	// Run asynchronously; progress and result land in the store
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	go func() {
		defer cancel()
		// Run records its own errors and status transitions
		_, _ = h.Pipeline.Run(ctx, runID, req.SubmissionID)
	}()

	writeJSON(w, map[string]interface{}{
		"message":       "Run created successfully!",
		"runID":         runID,
		"submission_id": req.SubmissionID,
		"status":        "pending",
		"createdAt":     time.Now().UTC(),
	})
}

// ListOrderRuns lists all processing runs
// @Summary List runs
// @Description Get all processing runs with their current status
// @Tags orders
// @Produce json
// @Success 200 {array} model.RunRecord "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /orders [get]
func (h *OrderHandler) ListOrderRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, runs)
}

// GetOrderRun retrieves one run
// @Summary Get run
// @Description Retrieve a single processing run
// @Tags orders
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.RunRecord "Run details"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrderRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "")
	if !ok {
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	writeJSON(w, run)
}

// GetOrderRunResult retrieves the order result of a run
// @Summary Get run result
// @Description Retrieve the normalized order-line result of a completed run
// @Tags orders
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.OrderResult "Order result"
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Router /orders/{id}/result [get]
func (h *OrderHandler) GetOrderRunResult(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/result")
	if !ok {
		return
	}

	result, err := store.GetRunResult(runID)
	if err != nil {
		http.Error(w, "Result not found", http.StatusNotFound)
		return
	}
	writeJSON(w, result)
}

// GetOrderRunReport retrieves the text report of a run
// @Summary Get run report
// @Description Retrieve the plain-text order report of a completed run
// @Tags orders
// @Produce plain
// @Param id path string true "Run ID"
// @Success 200 {string} string "Order report"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /orders/{id}/report [get]
func (h *OrderHandler) GetOrderRunReport(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/report")
	if !ok {
		return
	}

	report, err := store.GetRunReport(runID)
	if err != nil {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(report))
}

// GetOrderRunErrors retrieves errors recorded for a run
// @Summary Get run errors
// @Description Retrieve all errors recorded during a run
// @Tags orders
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /orders/{id}/errors [get]
func (h *OrderHandler) GetOrderRunErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/errors")
	if !ok {
		return
	}

	runErrors, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"run_id": runID,
		"errors": runErrors,
		"count":  len(runErrors),
	})
}

// GetOrderRunLogs retrieves stage logs recorded for a run
// @Summary Get run logs
// @Description Retrieve the stage-level logs recorded during a run
// @Tags orders
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run logs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /orders/{id}/logs [get]
func (h *OrderHandler) GetOrderRunLogs(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/logs")
	if !ok {
		return
	}

	logs, err := store.GetRunLogs(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve logs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"run_id": runID,
		"logs":   logs,
		"count":  len(logs),
	})
}

// runIDFromPath slices the run id out of the URL between the route prefix
// and the given suffix, writing a 400 when the path is malformed.
func runIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	if !strings.HasPrefix(path, routePrefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := path[len(routePrefix) : len(path)-len(suffix)]
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
