package source

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"time"
)

var (
	// ErrNoSource is returned when a loader has nothing to read from.
	ErrNoSource = errors.New("no question source configured")
	// ErrStatus is returned when the remote answers with a non-200 status.
	ErrStatus = errors.New("unexpected HTTP status")
	// ErrTooLarge is returned when a remote body exceeds the size limit.
	ErrTooLarge = errors.New("response body too large")
)

// DefaultMaxBodySize caps how much of a remote response is accepted.
const DefaultMaxBodySize = 4 << 20

//go:embed data/questions.csv
var embedded embed.FS

// Source yields raw comma-separated question data.
type Source interface {
	// Name identifies the source in logs and status lines.
	Name() string

	// Fetch returns the raw delimited text.
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPSource fetches question data with an HTTP GET.
type HTTPSource struct {
	url     string
	client  *http.Client
	timeout time.Duration
	maxBody int64
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithClient sets the HTTP client.
func WithClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) { s.client = c }
}

// WithTimeout bounds a single fetch.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) { s.timeout = d }
}

// WithMaxBodySize rejects responses larger than n bytes.
func WithMaxBodySize(n int64) HTTPOption {
	return func(s *HTTPSource) { s.maxBody = n }
}

// NewHTTPSource creates a source for the given URL.
func NewHTTPSource(rawURL string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:     rawURL,
		client:  http.DefaultClient,
		timeout: 10 * time.Second,
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SheetExportURL returns the CSV export URL of a Google Sheets document.
func SheetExportURL(sheetID, gid string) string {
	if gid == "" {
		gid = "0"
	}
	q := url.Values{}
	q.Set("format", "csv")
	q.Set("gid", gid)
	return "https://docs.google.com/spreadsheets/d/" + url.PathEscape(sheetID) + "/export?" + q.Encode()
}

func (s *HTTPSource) Name() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d for %s", ErrStatus, resp.StatusCode, s.url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxBody {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, s.url, s.maxBody)
	}
	return data, nil
}

// FileSource reads question data from a file. A nil fsys reads from the
// local disk.
type FileSource struct {
	fsys fs.FS
	path string
	name string
}

// NewFileSource reads the file at path on the local disk.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, name: path}
}

// NewFSSource reads path from fsys.
func NewFSSource(fsys fs.FS, path string) *FileSource {
	return &FileSource{fsys: fsys, path: path, name: path}
}

// Embedded returns the default deck compiled into the binary.
func Embedded() *FileSource {
	return &FileSource{fsys: embedded, path: "data/questions.csv", name: "embedded"}
}

func (s *FileSource) Name() string {
	return s.name
}

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.fsys == nil {
		return os.ReadFile(s.path)
	}
	return fs.ReadFile(s.fsys, s.path)
}
