// Package classify provides an HTTP client for the remote classification
// capability used to process type-B orders.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"orderflow/internal/core/domain/model/classification"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

const requestTimeout = 10 * time.Second

var _ ports.Classifier = (*Client)(nil)

// Client calls the remote classification service over HTTP.
//
// Every transport or protocol failure is wrapped so that callers can match
// it with errors.Is against errs.ErrClassificationFailed. A non-success
// envelope is not a failure: the envelope is returned as-is and its status
// is interpreted downstream.
type Client struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[classification.Result]
}

// responseBody is the wire representation of a classification envelope.
type responseBody struct {
	Status string  `json:"status"`
	Data   float64 `json:"data"`
}

// NewClient creates a classification client for the given service base URL.
func NewClient(baseURL string) *Client {
	settings := gobreaker.Settings{
		Name:    "classifier",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		breaker: gobreaker.NewCircuitBreaker[classification.Result](settings),
	}
}

// Classify fetches the classification envelope for the given order.
func (c *Client) Classify(ctx context.Context, orderID kernel.UUID) (classification.Result, error) {
	if err := orderID.Validate(); err != nil {
		return classification.Result{}, err
	}

	result, err := c.breaker.Execute(func() (classification.Result, error) {
		return c.fetch(ctx, orderID)
	})
	if err != nil {
		return classification.Result{}, errs.NewClassificationErrorWithCause(orderID.String(), err)
	}
	return result, nil
}

func (c *Client) fetch(ctx context.Context, orderID kernel.UUID) (classification.Result, error) {
	url := fmt.Sprintf("%s/api/v1/classifications/%s", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return classification.Result{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return classification.Result{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return classification.Result{}, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}

	var body responseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return classification.Result{}, fmt.Errorf("decode response: %w", err)
	}
	return classification.NewResult(body.Status, body.Data), nil
}
