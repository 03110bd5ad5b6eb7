// Package advisorclient is the consumer-side client for the advisor HTTP API.
//
// It issues single-attempt requests with a fixed 30 second timeout and maps
// transport and HTTP failures to user-facing error messages.
package advisorclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"investadvisor/pkg/advisor"
)

// Fixed user-facing messages for failures the caller cannot act on beyond
// retrying.
var (
	errServerFault = errors.New("Server error occurred while generating recommendation")
	errUnexpected  = errors.New("An unexpected error occurred. Please try again.")
	errHealthCheck = errors.New("API health check failed")
)

// DefaultBaseURL is where a locally run server listens by default.
const DefaultBaseURL = "http://127.0.0.1:8000"

const requestTimeout = 30 * time.Second

// Client talks to a running advisor server. The zero value is not usable;
// construct one with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the server at baseURL. An empty baseURL selects
// DefaultBaseURL. Trailing slashes are stripped.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// TransportError reports that the server could not be reached at all, either
// because the connection failed or because the request timed out.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string { return e.Message }

func (e *TransportError) Unwrap() error { return e.Err }

// Health mirrors the GET /api/health response.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	AIEnabled bool   `json:"aiEnabled"`
}

type recommendRequest struct {
	UserInput string `json:"userInput"`
}

type recommendEnvelope struct {
	Success bool                    `json:"success"`
	Data    *advisor.Recommendation `json:"data"`
	Error   string                  `json:"error"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Recommend asks the server for a recommendation for userInput. It makes a
// single attempt with no retries and no caching. Failures map to messages a
// user can act on:
//   - connection failure or timeout: "unable to connect" naming the port,
//   - HTTP 400: the server's validation message,
//   - HTTP 500: a generic server-error message,
//   - anything else: a generic unexpected-error message.
func (c *Client) Recommend(ctx context.Context, userInput string) (*advisor.Recommendation, error) {
	body, err := json.Marshal(recommendRequest{UserInput: userInput})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{
			Message: fmt.Sprintf("Unable to connect to the recommendation service. Please check if the server is running on port %s.", c.port()),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var envelope recommendEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return nil, errUnexpected
		}
		if !envelope.Success || envelope.Data == nil {
			msg := envelope.Error
			if msg == "" {
				msg = "Failed to get recommendation"
			}
			return nil, errors.New(msg)
		}
		return envelope.Data, nil
	case resp.StatusCode == http.StatusBadRequest:
		var body errorBody
		msg := "Invalid request"
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			msg = body.Error
		}
		return nil, errors.New(msg)
	case resp.StatusCode == http.StatusInternalServerError:
		return nil, errServerFault
	default:
		return nil, errUnexpected
	}
}

// Health fetches the server's health status.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{
			Message: "API health check failed",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errHealthCheck
	}

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &health, nil
}

// port extracts the port from the base URL for use in connection-failure
// messages, falling back to the scheme default.
func (c *Client) port() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "8000"
	}
	if p := u.Port(); p != "" {
		return p
	}
	if u.Scheme == "https" {
		return "443"
	}
	return "80"
}
