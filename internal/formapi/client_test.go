package formapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-order-pipeline/internal/formapi"
)

func TestFetchSubmission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submission/321", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("APIKEY"))
		w.Write([]byte(`{"responseCode":200,"message":"success","content":{"answers":{"1":{"answer":"x"}}}}`))
	}))
	defer srv.Close()

	client := formapi.NewClient(srv.URL, "secret", srv.Client())
	sub, err := client.FetchSubmission(context.Background(), "321")
	require.NoError(t, err)

	assert.Equal(t, 200, sub.ResponseCode)
	assert.Equal(t, "success", sub.Message)
	content, ok := sub.Content.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, content, "answers")
}

func TestFetchLatestSubmission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/form/77/submissions", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "created_at", r.URL.Query().Get("orderby"))
		w.Write([]byte(`{"content":[{"answers":{}}]}`))
	}))
	defer srv.Close()

	client := formapi.NewClient(srv.URL, "secret", srv.Client())
	sub, err := client.FetchLatestSubmission(context.Background(), "77")
	require.NoError(t, err)

	_, ok := sub.Content.([]interface{})
	assert.True(t, ok, "latest-submission content is a list")
}

func TestFetchSubmissionBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := formapi.NewClient(srv.URL, "wrong", srv.Client())
	_, err := client.FetchSubmission(context.Background(), "321")
	require.Error(t, err)

	var fetchErr *formapi.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, formapi.KindRequestFailure, fetchErr.Kind)
	assert.Contains(t, fetchErr.Message, "401")
}

func TestFetchSubmissionInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := formapi.NewClient(srv.URL, "secret", srv.Client())
	_, err := client.FetchSubmission(context.Background(), "321")
	require.Error(t, err)

	var fetchErr *formapi.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, formapi.KindInvalidJSON, fetchErr.Kind)
}

func TestFetchSubmissionConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	client := formapi.NewClient(srv.URL, "secret", nil)
	_, err := client.FetchSubmission(context.Background(), "321")
	require.Error(t, err)

	var fetchErr *formapi.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, formapi.KindRequestFailure, fetchErr.Kind)
}
