package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadOption customises the UploadService.
type UploadOption func(*UploadService)

// WithUploadClock injects a custom time source.
func WithUploadClock(clock func() time.Time) UploadOption {
	return func(s *UploadService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// UploadService writes uploaded files into the local uploads directory and
// hands back the public URL they are served under.
type UploadService struct {
	dir      string
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

// NewUploadService constructs an UploadService. maxSizeMB bounds the
// accepted file size; zero means no limit.
func NewUploadService(dir, baseURL string, maxSizeMB int, opts ...UploadOption) (*UploadService, error) {
	if dir == "" {
		return nil, errors.New("upload service: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload service: create directory: %w", err)
	}

	service := &UploadService{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: int64(maxSizeMB) * 1024 * 1024,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// Dir returns the directory uploads are written into.
func (s *UploadService) Dir() string { return s.dir }

// Save stores the file under a timestamped, sanitised name and returns its
// public URL.
func (s *UploadService) Save(filename string, size int64, src io.Reader) (string, error) {
	if s.maxBytes > 0 && size > s.maxBytes {
		return "", appErrors.NewBadRequest(fmt.Sprintf("file exceeds the %d MB upload limit", s.maxBytes/(1024*1024)))
	}

	safe := sanitizeFilename(filename)
	if safe == "" {
		return "", appErrors.NewBadRequest("filename is required")
	}
	stored := fmt.Sprintf("%d_%s", s.now().UTC().Unix(), safe)

	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("upload service: create file: %w", err)
	}
	defer dst.Close()

	reader := src
	if s.maxBytes > 0 {
		reader = io.LimitReader(src, s.maxBytes+1)
	}
	written, err := io.Copy(dst, reader)
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("upload service: write file: %w", err)
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		os.Remove(dst.Name())
		return "", appErrors.NewBadRequest(fmt.Sprintf("file exceeds the %d MB upload limit", s.maxBytes/(1024*1024)))
	}

	return s.baseURL + "/" + stored, nil
}

// sanitizeFilename strips path components and any character outside a safe
// allowlist.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}
