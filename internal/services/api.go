// API service for making raw HTTP requests to the SenFlix server
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/senflix/sfx/internal/shared"
	"golang.org/x/time/rate"
)

// APIService provides methods for making raw HTTP requests to the SenFlix server.
//
// An optional imported browser session ([shared.CurlHeaders]) is replayed on
// every request, and an optional rate limiter throttles outgoing calls so
// incremental search cannot hammer the OMDB-backed lookup.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	session    *shared.CurlHeaders
	limiter    *rate.Limiter
}

// NewAPIService creates a new API service instance for the SenFlix server.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5001"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// SetSession attaches an imported browser session to subsequent requests.
func (a *APIService) SetSession(session *shared.CurlHeaders) {
	a.session = session
}

// SetRateLimit throttles outgoing requests to n per second.
func (a *APIService) SetRateLimit(n float64) {
	if n <= 0 {
		a.limiter = nil
		return
	}
	a.limiter = rate.NewLimiter(rate.Limit(n), 1)
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the response carries a 2xx status.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (a *APIService) do(req *http.Request) (*APIResponse, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	if a.session != nil {
		a.session.Apply(req)
	}
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return a.do(req)
}

// Post performs a POST request with the given JSON data and returns the raw response.
func (a *APIService) Post(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return a.do(req)
}

// PostForm performs a form-encoded POST, as the rating endpoint expects.
func (a *APIService) PostForm(ctx context.Context, path string, form url.Values) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return a.do(req)
}
