// Package selfupdate checks GitHub for newer fff releases and swaps the
// running executable for the release built for this platform.
package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultOwner   = "fffcards"
	defaultRepo    = "fff"
	defaultTimeout = 30 * time.Second

	// binaryName is the executable packed into release archives.
	binaryName = "fff"

	maxMetadata = 1 << 20
	// DefaultMaxDownload caps release archive downloads.
	DefaultMaxDownload = 100 << 20

	// DevVersion is reported by builds without release version information.
	DevVersion = "(devel)"
)

var (
	ErrNoRelease     = errors.New("no published release")
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrNoAsset       = errors.New("release has no asset for this platform")
	ErrNoBinary      = errors.New("archive does not contain the executable")
	ErrChecksum      = errors.New("checksum verification failed")
	ErrTooLarge      = errors.New("download too large")
	ErrUnsupported   = errors.New("unsupported platform")

	errNotFound = errors.New("not found")
)

// Checker reads releases of one GitHub repository and installs them.
type Checker struct {
	client      *http.Client
	baseURL     string
	owner       string
	repo        string
	maxDownload int64
	platform    Platform
	execPath    func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout bounds every request made by the checker.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client = &http.Client{Timeout: d} }
}

// WithClient sets the HTTP client.
func WithClient(hc *http.Client) Option {
	return func(c *Checker) { c.client = hc }
}

// WithBaseURL points the checker at another API host.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithRepo overrides the repository releases are read from.
func WithRepo(owner, repo string) Option {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

// WithMaxDownload rejects release archives larger than n bytes.
func WithMaxDownload(n int64) Option {
	return func(c *Checker) { c.maxDownload = n }
}

// WithPlatform selects the release archive for p instead of the running
// platform.
func WithPlatform(p Platform) Option {
	return func(c *Checker) { c.platform = p }
}

func withExecPath(f func() (string, error)) Option {
	return func(c *Checker) { c.execPath = f }
}

// NewChecker returns a Checker for the fff release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:      &http.Client{Timeout: defaultTimeout},
		baseURL:     defaultBaseURL,
		owner:       defaultOwner,
		repo:        defaultRepo,
		maxDownload: DefaultMaxDownload,
		platform:    CurrentPlatform(),
		execPath:    executable,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func executable() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(p)
}

// get fetches url and fails instead of truncating when the body is larger
// than limit.
func (c *Checker) get(ctx context.Context, url, accept string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", errNotFound, url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, url, limit)
	}
	return data, nil
}
