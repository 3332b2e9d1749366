// Package fetch retrieves markup resources over HTTP and hands them to
// the markup scanner as character sources. It also saves fetched
// resources to disk and runs bounded-concurrency batch fetches.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/tagwalk/markup"
)

var log = commonlog.GetLogger("tagwalk.fetch")

const (
	// DefaultUserAgent mimics a desktop browser; many sites serve
	// stripped-down or blocked pages to unknown agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36"

	DefaultTimeout      = 30 * time.Second
	DefaultMaxRedirects = 10
)

// Fetcher retrieves resources over HTTP. The zero value is not usable;
// create one with NewFetcher.
type Fetcher struct {
	client    *http.Client
	userAgent string
	headers   map[string]string
}

// FetchOption adjusts a Fetcher at construction time.
type FetchOption func(*Fetcher)

// WithUserAgent replaces the browser-style default User-Agent.
func WithUserAgent(agent string) FetchOption {
	return func(f *Fetcher) { f.userAgent = agent }
}

// WithTimeout bounds each whole fetch, connection through body.
func WithTimeout(d time.Duration) FetchOption {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithMaxRedirects caps how many redirects a fetch follows before
// failing.
func WithMaxRedirects(max int) FetchOption {
	return func(f *Fetcher) {
		f.client.CheckRedirect = redirectCap(max)
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(name, value string) FetchOption {
	return func(f *Fetcher) { f.headers[name] = value }
}

// NewFetcher returns a Fetcher with browser-style defaults.
func NewFetcher(opts ...FetchOption) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Timeout:       DefaultTimeout,
			CheckRedirect: redirectCap(DefaultMaxRedirects),
		},
		userAgent: DefaultUserAgent,
		headers:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func redirectCap(max int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return fmt.Errorf("stopped after %d redirects", max)
		}
		return nil
	}
}

// Resource is one fetched document.
type Resource struct {
	URL         string
	ContentType string
	Body        []byte
	FetchedAt   time.Time
}

// Source returns a character source reading the resource body.
func (r *Resource) Source() markup.CharSource {
	return markup.NewReaderSource(bytes.NewReader(r.Body))
}

// Fetch retrieves url and reads its whole body. Non-2xx responses are
// errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Resource, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", url, err)
	}

	log.Debugf("fetched %s: %d bytes, %s", url, len(body), resp.Header.Get("Content-Type"))
	return &Resource{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		FetchedAt:   time.Now(),
	}, nil
}

// Source retrieves url and streams its body as a character source. The
// returned closer releases the underlying connection; the caller must
// close it when scanning ends.
func (f *Fetcher) Source(ctx context.Context, url string) (markup.CharSource, io.Closer, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return markup.NewReaderSource(resp.Body), resp.Body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	for name, value := range f.headers {
		req.Header.Set(name, value)
	}

	log.Infof("GET %s", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}
	return resp, nil
}
