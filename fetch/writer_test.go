package fetch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSave(t *testing.T) {
	t.Run("names the file after the url path basename", func(t *testing.T) {
		dir := t.TempDir()
		res := &Resource{
			URL:  "https://example.com/docs/page.html",
			Body: []byte("<html></html>"),
		}

		path, err := NewWriter(dir).Save(res)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "page.html"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, res.Body, data)
	})

	t.Run("sanitizes hostile basenames", func(t *testing.T) {
		dir := t.TempDir()
		res := &Resource{
			URL:  "https://example.com/a%20b?.html",
			Body: []byte("x"),
		}

		path, err := NewWriter(dir).Save(res)
		require.NoError(t, err)
		base := filepath.Base(path)
		assert.NotContains(t, base, "%")
		assert.NotContains(t, base, "?")
		assert.NotContains(t, base, string(os.PathSeparator))
	})

	t.Run("generates a name when the url has no basename", func(t *testing.T) {
		dir := t.TempDir()
		res := &Resource{
			URL:         "https://example.com/",
			ContentType: "text/html; charset=utf-8",
			Body:        []byte("<html></html>"),
		}

		path, err := NewWriter(dir).Save(res)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, ".html"), "path = %q, want .html suffix", path)
		assert.FileExists(t, path)
	})

	t.Run("creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		res := &Resource{URL: "https://example.com/x.txt", Body: []byte("x")}

		path, err := NewWriter(dir).Save(res)
		require.NoError(t, err)
		assert.FileExists(t, path)
	})
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"text/html", ".html"},
		{"text/html; charset=utf-8", ".html"},
		{"application/xhtml+xml", ".html"},
		{"text/plain", ".txt"},
		{"application/json", ".json"},
		{"application/xml", ".xml"},
		{"application/octet-stream", ".bin"},
		{"", ".bin"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionFor(tt.contentType), "content type %q", tt.contentType)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"page.html", "page.html"},
		{"a b.html", "a-b.html"},
		{"..", ""},
		{"", ""},
		{"---", ""},
		{"índex.html", "-ndex.html"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.in), "sanitize(%q)", tt.in)
	}
}
