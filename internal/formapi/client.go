package formapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go-order-pipeline/internal/model"
)

// FetchError kinds. RequestFailure covers transport errors and non-2xx
// responses; InvalidJSON covers bodies that fail to decode.
const (
	KindRequestFailure = "RequestFailure"
	KindInvalidJSON    = "JSONDecodeError"
)

// FetchError is the structured failure returned by the form API client.
type FetchError struct {
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Fetcher retrieves raw submissions from the form platform. The pipeline
// only depends on this interface so tests can swap in a stub.
type Fetcher interface {
	FetchSubmission(ctx context.Context, submissionID string) (model.Submission, error)
	FetchLatestSubmission(ctx context.Context, formID string) (model.Submission, error)
}

// Client is the HTTP implementation of Fetcher against the JotForm API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a form API client. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: httpClient,
	}
}

// FetchSubmission fetches a single submission by its id.
func (c *Client) FetchSubmission(ctx context.Context, submissionID string) (model.Submission, error) {
	endpoint := fmt.Sprintf("%s/submission/%s", c.BaseURL, url.PathEscape(submissionID))
	return c.get(ctx, endpoint, nil)
}

// FetchLatestSubmission fetches the most recent submission of a form. The
// response's content is a list; the extractor already tolerates that shape.
func (c *Client) FetchLatestSubmission(ctx context.Context, formID string) (model.Submission, error) {
	endpoint := fmt.Sprintf("%s/form/%s/submissions", c.BaseURL, url.PathEscape(formID))
	params := url.Values{}
	params.Set("limit", "1")
	params.Set("orderby", "created_at")
	return c.get(ctx, endpoint, params)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (model.Submission, error) {
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Submission{}, &FetchError{Kind: KindRequestFailure, Message: err.Error()}
	}
	req.Header.Set("APIKEY", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return model.Submission{}, &FetchError{Kind: KindRequestFailure, Message: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Submission{}, &FetchError{Kind: KindRequestFailure, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Submission{}, &FetchError{
			Kind:    KindRequestFailure,
			Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(bodyBytes)),
		}
	}

	var raw model.GenericRecord
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return model.Submission{}, &FetchError{
			Kind:    KindInvalidJSON,
			Message: "response is not valid JSON",
		}
	}

	sub := model.Submission{Raw: raw}
	if content, ok := raw["content"]; ok {
		sub.Content = content
	}
	if msg, ok := raw["message"].(string); ok {
		sub.Message = msg
	}
	if code, ok := raw["responseCode"].(float64); ok {
		sub.ResponseCode = int(code)
	}

	return sub, nil
}
