// Package debug traces outgoing HTTP requests into the debug log.
package debug

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Transport wraps an http.RoundTripper and records each request and its
// response at debug level. Bodies are never read.
type Transport struct {
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// NewTransport creates a Transport around base. A nil base means
// http.DefaultTransport and a nil logger means slog.Default() at call time.
func NewTransport(base http.RoundTripper, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Transport: base, Logger: logger}
}

func (t *Transport) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	log := t.logger()
	start := time.Now()

	log.Debug("http request",
		"method", req.Method,
		"url", req.URL.String(),
		"authorization", redact(req.Header.Get("Authorization")))

	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		log.Debug("http error", "url", req.URL.String(), "error", err, "duration", duration)
		return resp, err
	}

	attrs := []any{"status", resp.StatusCode, "url", req.URL.String(), "duration", duration}
	if rl := rateLimit(resp.Header); rl != "" {
		attrs = append(attrs, "rate_limit", rl)
	}
	log.Debug("http response", attrs...)
	return resp, nil
}

// redact keeps only the scheme and last four characters of a credential.
func redact(auth string) string {
	if auth == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok {
		scheme, token = "", auth
	}
	if len(token) > 10 {
		token = "..." + token[len(token)-4:]
	} else {
		token = "..."
	}
	return strings.TrimSpace(scheme + " " + token)
}

// rateLimit summarises GitHub's X-RateLimit-* headers, e.g. "59/60 (resets in 120s)".
func rateLimit(h http.Header) string {
	remaining := h.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return ""
	}
	out := remaining + "/" + h.Get("X-RateLimit-Limit")
	if reset := h.Get("X-RateLimit-Reset"); reset != "" {
		if ts, err := strconv.ParseInt(reset, 10, 64); err == nil {
			if wait := time.Until(time.Unix(ts, 0)); wait > 0 {
				out += " (resets in " + strconv.Itoa(int(wait.Seconds())) + "s)"
			}
		}
	}
	return out
}
