// Package activities provides the HTTP client for the activity signup API.
//
// The client mirrors the server's roster wholesale on every List call and
// submits signup/unregister mutations. It never retries and never caches;
// callers re-sync by issuing a fresh List after each successful mutation.
package activities

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mergington/activities/pkg/roster"
)

// DefaultBaseURL is the activities server used when no configuration is
// provided.
const DefaultBaseURL = "http://localhost:8000"

// defaultTimeout bounds a single request when the caller supplies no
// context deadline of its own.
const defaultTimeout = 10 * time.Second

// Service is the roster operations surface consumed by the CLI and TUI
// layers. Client is the production implementation; tests substitute fakes.
type Service interface {
	// List fetches the full activity roster.
	List(ctx context.Context) (roster.Roster, error)
	// Signup registers email for the named activity and returns the
	// server-provided success message.
	Signup(ctx context.Context, activity, email string) (string, error)
	// Unregister removes email from the named activity.
	Unregister(ctx context.Context, activity, email string) error
}

// Client talks to the activities API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time interface compliance verification.
var _ Service = (*Client)(nil)

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: defaultTimeout})
}

// NewClientWithHTTPClient creates a client with a caller-supplied
// *http.Client, used to control timeouts and transports in tests.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the server base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the full roster from GET /activities.
func (c *Client) List(ctx context.Context) (roster.Roster, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}
	defer resp.Body.Close()

	err = checkStatus(resp)
	if err != nil {
		return nil, err
	}

	var rst roster.Roster

	err = json.NewDecoder(resp.Body).Decode(&rst)
	if err != nil {
		return nil, fmt.Errorf("%w: decode roster: %w", ErrMalformedResponse, err)
	}

	return rst, nil
}

// Signup registers email for the named activity via
// POST /activities/{name}/signup?email=… and returns the server's message.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	resp, err := c.mutate(ctx, http.MethodPost, activity, "signup", email)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	err = checkStatus(resp)
	if err != nil {
		return "", err
	}

	var body struct {
		Message string `json:"message"`
	}

	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return "", fmt.Errorf("%w: decode signup response: %w", ErrMalformedResponse, err)
	}

	return body.Message, nil
}

// Unregister removes email from the named activity via
// DELETE /activities/{name}/unregister?email=…. Any 2xx counts as success;
// the body is ignored.
func (c *Client) Unregister(ctx context.Context, activity, email string) error {
	resp, err := c.mutate(ctx, http.MethodDelete, activity, "unregister", email)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// mutate issues a mutating request against /activities/{name}/{action}
// with the participant email as a URL-encoded query parameter.
func (c *Client) mutate(
	ctx context.Context,
	method, activity, action, email string,
) (*http.Response, error) {
	query := url.Values{}
	query.Set("email", email)

	endpoint := fmt.Sprintf(
		"%s/activities/%s/%s?%s",
		c.baseURL,
		url.PathEscape(activity),
		action,
		query.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", action, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", action, err)
	}

	return resp, nil
}

// checkStatus converts a non-2xx response into an *APIError, decoding the
// {detail} failure body when one is present. The body of failed responses
// is consumed here; success bodies are left for the caller.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Detail string `json:"detail"`
	}

	// A missing or undecodable detail body still yields a usable APIError;
	// the status code alone is enough for the generic fallback path.
	err := json.NewDecoder(resp.Body).Decode(&body)
	if err == nil {
		apiErr.Detail = body.Detail
	}

	return apiErr
}
