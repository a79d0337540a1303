package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-order-pipeline/internal/api"
	"go-order-pipeline/internal/api/handler"
	"go-order-pipeline/internal/config"
	"go-order-pipeline/internal/model"
	"go-order-pipeline/internal/pipeline"
	"go-order-pipeline/internal/store"
	"go-order-pipeline/pkg/router"
)

type stubFetcher struct {
	sub model.Submission
	err error
}

func (s stubFetcher) FetchSubmission(ctx context.Context, submissionID string) (model.Submission, error) {
	return s.sub, s.err
}

func (s stubFetcher) FetchLatestSubmission(ctx context.Context, formID string) (model.Submission, error) {
	return s.sub, s.err
}

func setupServer(t *testing.T, fetcher stubFetcher) http.Handler {
	t.Helper()
	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "orders.db")))
	t.Cleanup(func() { store.CloseDB() })

	cfg := &config.Config{
		ClientID:         "1754",
		DefaultProductID: "2215",
		ProductIDs:       map[string]string{"W100": "500"},
	}

	p := pipeline.New(fetcher, cfg, nil)
	p.Store = store.RunStore{}

	r := router.New(nil)
	api.RegisterRoutes(r, handler.NewOrderHandler(p))
	return r.Handler()
}

func submissionWithOneRow() model.Submission {
	return model.Submission{Content: map[string]interface{}{
		"answers": map[string]interface{}{
			"1": map[string]interface{}{
				"type": "control_email", "order": "1", "text": "E-mail",
				"answer": "buyer@example.com",
			},
			"2": map[string]interface{}{
				"type": "control_matrix", "order": "2", "text": "W100 - Widgets",
				"mrows":  "Widget A",
				"answer": []interface{}{float64(2)},
			},
		},
	}}
}

func createRun(t *testing.T, h http.Handler, body string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func waitForStatus(t *testing.T, runID, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		run, err := store.GetRun(runID)
		return err == nil && run.Status == want
	}, 2*time.Second, 10*time.Millisecond, "run never reached status %s", want)
}

func TestCreateOrderRunCompletes(t *testing.T) {
	h := setupServer(t, stubFetcher{sub: submissionWithOneRow()})

	resp := createRun(t, h, `{"submission_id":"sub-1"}`)
	runID, _ := resp["runID"].(string)
	require.NotEmpty(t, runID)

	waitForStatus(t, runID, "completed")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+runID+"/result", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.OrderResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "buyer@example.com", result.Email)
	assert.Equal(t, []string{"500"}, result.ProductIDs)
}

func TestCreateOrderRunValidation(t *testing.T) {
	h := setupServer(t, stubFetcher{sub: submissionWithOneRow()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`not json`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFailedRunRecordsError(t *testing.T) {
	h := setupServer(t, stubFetcher{err: assert.AnError})

	resp := createRun(t, h, `{"submission_id":"sub-1"}`)
	runID, _ := resp["runID"].(string)
	require.NotEmpty(t, runID)

	waitForStatus(t, runID, "failed")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+runID+"/errors", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestGetOrderRunNotFound(t *testing.T) {
	h := setupServer(t, stubFetcher{sub: submissionWithOneRow()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/does-not-exist", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderRunReport(t *testing.T) {
	h := setupServer(t, stubFetcher{sub: submissionWithOneRow()})

	resp := createRun(t, h, `{"submission_id":"sub-1"}`)
	runID, _ := resp["runID"].(string)
	waitForStatus(t, runID, "completed")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+runID+"/report", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-mail: buyer@example.com")
	assert.Contains(t, rec.Body.String(), "W100 | Widget A | 2")
}
