// Package testutil provides an HTTP stand-in for the GitHub releases API.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// MockServer serves canned responses keyed by method and path and counts
// the requests it receives.
type MockServer struct {
	server   *httptest.Server
	handlers map[string]http.HandlerFunc
	hits     map[string]int
	mu       sync.RWMutex
}

// NewMockServer creates a new mock server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		handlers: make(map[string]http.HandlerFunc),
		hits:     make(map[string]int),
	}

	ms.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		ms.mu.Lock()
		ms.hits[key]++
		handler, ok := ms.handlers[key]
		ms.mu.Unlock()

		if ok {
			handler(w, r)
			return
		}

		http.NotFound(w, r)
	}))

	return ms
}

// URL returns the server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close shuts down the server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// Handle registers a custom handler for a method+path.
func (ms *MockServer) Handle(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[method+" "+path] = handler
}

// Hits reports how many requests reached method+path.
func (ms *MockServer) Hits(method, path string) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.hits[method+" "+path]
}

// HandleJSON registers a handler that returns JSON with the given status.
func (ms *MockServer) HandleJSON(method, path string, status int, response interface{}) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	})
}

// LatestReleasePath is the API path for a repository's latest release.
func LatestReleasePath(repo string) string {
	return fmt.Sprintf("/repos/%s/releases/latest", repo)
}

// HandleLatestRelease answers the latest-release lookup for repo with tag.
func (ms *MockServer) HandleLatestRelease(repo, tag string) {
	ms.HandleJSON(http.MethodGet, LatestReleasePath(repo), http.StatusOK, map[string]interface{}{
		"tag_name":   tag,
		"name":       tag,
		"prerelease": false,
	})
}

// HandleError registers a handler that returns a GitHub API error body.
func (ms *MockServer) HandleError(method, path string, status int, message string) {
	ms.HandleJSON(method, path, status, map[string]interface{}{
		"message":           message,
		"documentation_url": "https://docs.github.com/rest",
	})
}

// HandleRateLimit registers a 403 with exhausted X-RateLimit headers that
// reset at resetUnix.
func (ms *MockServer) HandleRateLimit(method, path string, resetUnix int64) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetUnix, 10))
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "API rate limit exceeded",
		})
	})
}

// Reset clears all registered handlers and hit counts.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers = make(map[string]http.HandlerFunc)
	ms.hits = make(map[string]int)
}
