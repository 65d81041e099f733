// Package webhook is the client for the externally-hosted CV analysis
// workflow. The workflow is an opaque remote service; this package only
// builds valid requests and tolerates the response-shape variation the
// service is known to produce (payloads wrapped in a JSON array or in an
// "output" envelope).
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qatth/careerscan/internal/types"
)

// Endpoint paths on the workflow host.
const (
	EndpointCVAnalysis = "/cv-analysis"
	EndpointQuiz       = "/quiz"
	EndpointAnswerQuiz = "/answer-quiz"
)

// DefaultTimeout is the HTTP request timeout.
const DefaultTimeout = 60 * time.Second

// Error represents a failure talking to the workflow.
type Error struct {
	Endpoint string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("webhook error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("webhook error for %s: %s", e.Endpoint, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client calls the workflow endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the workflow at baseURL (for example
// "http://localhost:1234/webhook").
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("webhook base URL is empty")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// GenerateQuiz asks the workflow to build a quiz from CV text.
func (c *Client) GenerateQuiz(ctx context.Context, cvText string) (*types.Quiz, error) {
	payload, err := c.post(ctx, EndpointQuiz, map[string]string{"cv_text": cvText})
	if err != nil {
		return nil, err
	}
	if err := ValidateQuizPayload(payload); err != nil {
		return nil, &Error{Endpoint: EndpointQuiz, Message: "response failed schema validation", Cause: err}
	}

	var quiz types.Quiz
	if err := json.Unmarshal(payload, &quiz); err != nil {
		return nil, &Error{Endpoint: EndpointQuiz, Message: "failed to decode quiz", Cause: err}
	}
	return &quiz, nil
}

// ReviewAnswers submits CV text plus quiz answers and returns the
// structured review.
func (c *Client) ReviewAnswers(ctx context.Context, cvText string, answers []string) (*types.AnswerReview, error) {
	payload, err := c.post(ctx, EndpointAnswerQuiz, map[string]any{
		"cv_text": cvText,
		"answers": answers,
	})
	if err != nil {
		return nil, err
	}
	if err := ValidateReviewPayload(payload); err != nil {
		return nil, &Error{Endpoint: EndpointAnswerQuiz, Message: "response failed schema validation", Cause: err}
	}

	var review types.AnswerReview
	if err := json.Unmarshal(payload, &review); err != nil {
		return nil, &Error{Endpoint: EndpointAnswerQuiz, Message: "failed to decode review", Cause: err}
	}
	return &review, nil
}

// SubmitCV uploads raw CV text to the analysis endpoint and returns the
// unwrapped payload as-is. The shape of this payload belongs to the
// remote service.
func (c *Client) SubmitCV(ctx context.Context, cvText string) (json.RawMessage, error) {
	payload, err := c.post(ctx, EndpointCVAnalysis, map[string]string{"cv_text": cvText})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(payload), nil
}

// post sends a JSON body and returns the unwrapped response payload.
func (c *Client) post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: "failed to read response", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Endpoint: endpoint, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	return Unwrap(data), nil
}
