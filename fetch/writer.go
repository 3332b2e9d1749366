package fetch

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Writer saves fetched resources under a directory.
type Writer struct {
	Dir string
}

// NewWriter returns a Writer saving into dir. The directory is created
// on the first Save.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Save writes the resource body to a file named after the last segment
// of the URL path, sanitized. A URL with no usable basename gets a
// generated name with an extension guessed from the content type. Save
// returns the path of the written file.
func (w *Writer) Save(res *Resource) (string, error) {
	name := filenameFor(res)
	dest := filepath.Join(w.Dir, name)

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(dest, res.Body, 0644); err != nil {
		return "", fmt.Errorf("save %s: %w", res.URL, err)
	}

	log.Infof("saved %s to %s", res.URL, dest)
	return dest, nil
}

func filenameFor(res *Resource) string {
	if u, err := url.Parse(res.URL); err == nil {
		if base := sanitize(path.Base(u.Path)); base != "" {
			return base
		}
	}
	return uuid.New().String() + extensionFor(res.ContentType)
}

// sanitize keeps letters, digits, '.', '-', and '_'; everything else
// becomes '-'. Names that reduce to nothing or to bare dots are
// rejected so the caller falls back to a generated one.
func sanitize(name string) string {
	var b strings.Builder
	for _, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '.' || ch == '-' || ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteRune('-')
		}
	}
	cleaned := b.String()
	if cleaned == "" || strings.Trim(cleaned, ".-_") == "" {
		return ""
	}
	return cleaned
}

func extensionFor(contentType string) string {
	mediaType := contentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	switch strings.TrimSpace(strings.ToLower(mediaType)) {
	case "text/html", "application/xhtml+xml":
		return ".html"
	case "text/plain":
		return ".txt"
	case "text/xml", "application/xml":
		return ".xml"
	case "application/json":
		return ".json"
	default:
		return ".bin"
	}
}
