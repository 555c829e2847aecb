package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MaxBodySize caps the bytes read from a single remote resource
const MaxBodySize = 8 << 20

// ErrTooLarge is returned for response bodies over the source's size cap
var ErrTooLarge = errors.New("resource too large")

// HTTPSource fetches resources relative to a base URL, the way a browser
// resolves ./data/... against the page it is showing.
type HTTPSource struct {
	base    *url.URL
	client  *http.Client
	maxBody int64
}

// NewHTTPSource creates an HTTPSource. A zero timeout leaves requests bounded
// only by their context.
func NewHTTPSource(base string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing remote base %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("remote base %q must be an http(s) URL", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPSource{
		base:    u,
		client:  &http.Client{Timeout: timeout},
		maxBody: MaxBodySize,
	}, nil
}

// Fetch GETs name resolved against the base URL
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing resource %q: %w", ErrTransport, name, err)
	}
	target := s.base.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %w", ErrTransport, target, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrTransport, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Resource: name, Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrTransport, target, err)
	}
	if int64(len(data)) > s.maxBody {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, target, s.maxBody)
	}
	return data, nil
}
