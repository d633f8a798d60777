// Package update tells interactive users when a newer cj release exists.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/salmonumbrella/cj/internal/debug"
)

const (
	// CheckInterval is the minimum time between release lookups.
	CheckInterval = 24 * time.Hour
	// GitHubRepo is the repository whose releases are checked.
	GitHubRepo = "salmonumbrella/cj"
	// EnvDisable turns the check off when set to any value.
	EnvDisable = "CJ_NO_UPDATE_CHECK"

	// DefaultAPIBase is the GitHub REST endpoint.
	DefaultAPIBase = "https://api.github.com"

	cacheFile    = "update-check.json"
	fetchTimeout = 3 * time.Second
)

type cache struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
}

// HTTPDoer abstracts an HTTP client for testability.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Checker looks up the latest release, caching the answer on disk.
type Checker struct {
	httpClient HTTPDoer
	cachePath  string
	interval   time.Duration
	now        func() time.Time
	writeFile  func(string, []byte, os.FileMode) error
	repo       string
	apiBase    string
	logger     *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// NewChecker creates a Checker with defaults and applies options.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		httpClient: &http.Client{Transport: debug.NewTransport(nil, nil)},
		interval:   CheckInterval,
		now:        time.Now,
		writeFile:  os.WriteFile,
		repo:       GitHubRepo,
		apiBase:    DefaultAPIBase,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Checker) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithCachePath overrides the cache file location.
func WithCachePath(path string) Option {
	return func(c *Checker) {
		c.cachePath = path
	}
}

// WithAPIBase points the checker at another GitHub API host.
func WithAPIBase(base string) Option {
	return func(c *Checker) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			c.apiBase = base
		}
	}
}

// WithNow overrides the clock.
func WithNow(fn func() time.Time) Option {
	return func(c *Checker) {
		if fn != nil {
			c.now = fn
		}
	}
}

// UpdateError wraps update-check failures with the step that failed.
type UpdateError struct {
	Op  string
	Err error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("update check %s: %v", e.Op, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

// Enabled reports whether a notice may be printed: EnvDisable is unset and
// stdout is a terminal.
func Enabled(stdout *os.File) bool {
	if os.Getenv(EnvDisable) != "" || stdout == nil {
		return false
	}
	return term.IsTerminal(int(stdout.Fd()))
}

// Check returns a notice when a release newer than currentVersion exists.
// The network is consulted at most once per interval.
func (c *Checker) Check(ctx context.Context, currentVersion string) (string, error) {
	if !releaseBuild(currentVersion) {
		return "", nil
	}

	path, err := c.resolveCachePath()
	if err != nil {
		return "", &UpdateError{Op: "cache path", Err: err}
	}

	cached, err := loadCache(path)
	if err != nil {
		c.logger.Debug("ignoring unreadable update cache", "path", path, "error", err)
		cached = cache{}
	}

	latest := cached.LatestVersion
	if latest == "" || cached.LastCheck.IsZero() || c.now().Sub(cached.LastCheck) > c.interval {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		latest, err = c.fetchLatestRelease(ctx)
		if err != nil {
			return "", &UpdateError{Op: "fetch latest release", Err: err}
		}
		if err := c.saveCache(path, cache{LastCheck: c.now(), LatestVersion: latest}); err != nil {
			return notice(latest, currentVersion), &UpdateError{Op: "save cache", Err: err}
		}
	}

	if isNewer(currentVersion, latest) {
		return notice(latest, currentVersion), nil
	}
	return "", nil
}

// Check runs a default Checker and swallows failures into a debug record.
func Check(ctx context.Context, currentVersion string) string {
	checker := NewChecker()
	msg, err := checker.Check(ctx, currentVersion)
	if err != nil {
		checker.logger.Debug("update check failed", "error", err)
	}
	return msg
}

func (c *Checker) resolveCachePath() (string, error) {
	if strings.TrimSpace(c.cachePath) != "" {
		return c.cachePath, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cj", cacheFile), nil
}

func loadCache(path string) (cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cache{}, nil
	}
	if err != nil {
		return cache{}, err
	}
	var parsed cache
	if err := json.Unmarshal(data, &parsed); err != nil {
		return cache{}, err
	}
	return parsed, nil
}

func (c *Checker) saveCache(path string, value cache) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.writeFile(path, data, 0o644)
}

func (c *Checker) fetchLatestRelease(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.apiBase, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

func notice(latest, current string) string {
	return fmt.Sprintf("cj %s is available (you have %s)\nRun: go install github.com/%s/cmd/cj@latest",
		latest, current, GitHubRepo)
}

// releaseBuild rejects builds without a release version.
func releaseBuild(v string) bool {
	switch v {
	case "", "dev", "unknown":
		return false
	}
	return true
}

// isNewer compares dotted numeric versions. A pre-release suffix such as
// "-rc1" is ignored.
func isNewer(current, latest string) bool {
	if !releaseBuild(current) || latest == "" {
		return false
	}

	currentParts := versionParts(current)
	latestParts := versionParts(latest)
	for i := 0; i < len(currentParts) && i < len(latestParts); i++ {
		if latestParts[i] != currentParts[i] {
			return latestParts[i] > currentParts[i]
		}
	}
	return len(latestParts) > len(currentParts)
}

func versionParts(v string) []int {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	fields := strings.Split(v, ".")
	parts := make([]int, len(fields))
	for i, f := range fields {
		parts[i], _ = strconv.Atoi(f)
	}
	return parts
}
