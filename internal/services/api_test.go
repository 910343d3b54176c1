package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	. "github.com/senflix/sfx/internal/services"
	"github.com/senflix/sfx/internal/shared"
	tu "github.com/senflix/sfx/internal/testing"
)

func TestAPIService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			srv := NewAPIService("http://example.com", customClient)

			if srv.BaseURL() != "http://example.com" {
				t.Errorf("expected baseURL 'http://example.com', got %s", srv.BaseURL())
			}
			if srv.HTTPClient() != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			srv := NewAPIService("", nil)

			if srv.BaseURL() != "http://127.0.0.1:5001" {
				t.Errorf("expected default baseURL 'http://127.0.0.1:5001', got %s", srv.BaseURL())
			}
		})

		t.Run("With Nil Client", func(t *testing.T) {
			srv := NewAPIService("http://example.com", nil)

			if srv.HTTPClient() != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("Successful Request With JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.Path != "/api/categories" {
					t.Errorf("expected path '/api/categories', got %s", r.URL.Path)
				}
				if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
					t.Error("expected X-Requested-With header")
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]bool{"success": true})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Get(context.Background(), "/api/categories")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("expected status 200, got %d", resp.StatusCode)
			}
			if !resp.IsJSON {
				t.Error("expected response to be JSON")
			}
			if !resp.OK() {
				t.Error("expected OK() to be true")
			}
		})

		t.Run("Successful Request With Non-JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("plain text response"))
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Get(context.Background(), "/test")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.IsJSON {
				t.Error("expected response to not be JSON")
			}
			if string(resp.Body) != "plain text response" {
				t.Errorf("expected body 'plain text response', got %s", string(resp.Body))
			}
		})

		t.Run("Failed Request Creation", func(t *testing.T) {
			srv := NewAPIService("http://example.com", nil)
			_, err := srv.Get(context.Background(), "/test\x00invalid")

			if err == nil {
				t.Error("expected error for invalid URL")
			}
			if !strings.Contains(err.Error(), "failed to create request") {
				t.Errorf("expected 'failed to create request' error, got %v", err)
			}
		})

		t.Run("Failed HTTP Request", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection failed")),
			}
			srv := NewAPIService("http://example.com", client)
			_, err := srv.Get(context.Background(), "/test")

			if err == nil {
				t.Error("expected error for failed request")
			}
			if !strings.Contains(err.Error(), "request failed") {
				t.Errorf("expected 'request failed' error, got %v", err)
			}
		})
	})

	t.Run("Post", func(t *testing.T) {
		t.Run("JSON Body And Content Type", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("expected JSON content type, got %s", ct)
				}

				var body map[string]string
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("failed to decode body: %v", err)
				}
				if body["title"] != "Heat" {
					t.Errorf("expected title Heat, got %s", body["title"])
				}

				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]bool{"success": true})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Post(context.Background(), "/add_new_movie", []byte(`{"title":"Heat"}`))

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("expected status 200, got %d", resp.StatusCode)
			}
		})

		t.Run("Nil Body Sends No Content Type", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ct := r.Header.Get("Content-Type"); ct != "" {
					t.Errorf("expected empty content type, got %s", ct)
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"success": true}`))
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			if _, err := srv.Post(context.Background(), "/toggle_watched/1", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})

	t.Run("PostForm", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
				t.Errorf("expected form content type, got %s", ct)
			}
			if err := r.ParseForm(); err != nil {
				t.Errorf("failed to parse form: %v", err)
			}
			if r.PostForm.Get("rating") != "7" {
				t.Errorf("expected rating 7, got %s", r.PostForm.Get("rating"))
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		form := url.Values{}
		form.Set("movie_id", "12")
		form.Set("rating", "7")

		srv := NewAPIService(server.URL, nil)
		resp, err := srv.PostForm(context.Background(), "/rate_movie", form)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !resp.OK() {
			t.Errorf("expected OK response, got %d", resp.StatusCode)
		}
	})

	t.Run("Session Replay", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Cookie"); got != "session=abc123" {
				t.Errorf("expected session cookie, got %q", got)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		srv := NewAPIService(server.URL, nil)
		srv.SetSession(&shared.CurlHeaders{Cookie: "session=abc123"})

		if _, err := srv.Get(context.Background(), "/movies"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Rate Limit Respects Context Cancellation", func(t *testing.T) {
		srv := NewAPIService("http://example.com", &http.Client{
			Transport: tu.NewMockRoundTripper(nil, errors.New("should not be reached")),
		})
		srv.SetRateLimit(0.001)

		// Burst of 1 is consumed by the first wait; the second must block
		// until the cancelled context aborts it.
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := srv.Get(ctx, "/search_omdb?q=heat")
		if err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}
