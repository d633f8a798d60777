package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestMockServer_HandleLatestRelease(t *testing.T) {
	ms := NewMockServer()
	defer ms.Close()

	ms.HandleLatestRelease("acme/cj", "v1.2.3")

	resp, err := http.Get(ms.URL() + "/repos/acme/cj/releases/latest")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if result["tag_name"] != "v1.2.3" {
		t.Errorf("expected tag v1.2.3, got %v", result["tag_name"])
	}
	if got := ms.Hits(http.MethodGet, LatestReleasePath("acme/cj")); got != 1 {
		t.Errorf("expected 1 hit, got %d", got)
	}
}

func TestMockServer_HandleError(t *testing.T) {
	ms := NewMockServer()
	defer ms.Close()

	ms.HandleError("GET", "/repos/acme/missing/releases/latest", http.StatusNotFound, "Not Found")

	resp, err := http.Get(ms.URL() + "/repos/acme/missing/releases/latest")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Not Found") {
		t.Errorf("unexpected body %s", body)
	}
}

func TestMockServer_HandleRateLimit(t *testing.T) {
	ms := NewMockServer()
	defer ms.Close()

	reset := time.Now().Add(time.Minute).Unix()
	ms.HandleRateLimit("GET", "/limited", reset)

	resp, err := http.Get(ms.URL() + "/limited")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("expected exhausted rate limit header")
	}
}

func TestMockServer_UnknownRouteAndReset(t *testing.T) {
	ms := NewMockServer()
	defer ms.Close()

	ms.HandleJSON("GET", "/x", http.StatusOK, map[string]string{"ok": "yes"})
	ms.Reset()

	resp, err := http.Get(ms.URL() + "/x")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 after reset, got %d", resp.StatusCode)
	}
	if got := ms.Hits("GET", "/x"); got != 1 {
		t.Errorf("expected hits to count after reset, got %d", got)
	}
}
