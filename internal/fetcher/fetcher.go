package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// UserAgent mimics a desktop Chrome install; several state party sites
	// return empty or blocked pages to non-browser identifiers.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.5"

	// DefaultTimeout is the hard cap on one static fetch, aborting the
	// in-flight request rather than leaving it to hang.
	DefaultTimeout = 15 * time.Second
)

// FailKind classifies a fetch failure.
type FailKind int

const (
	FailTimeout FailKind = iota
	FailNetwork
	FailStatus
)

func (k FailKind) String() string {
	switch k {
	case FailTimeout:
		return "timeout"
	case FailNetwork:
		return "network"
	case FailStatus:
		return "status"
	}
	return "unknown"
}

// Error is a typed fetch failure. Status is only meaningful when Kind is
// FailStatus.
type Error struct {
	Kind   FailKind
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case FailStatus:
		return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.Status)
	case FailTimeout:
		return fmt.Sprintf("fetching %s: timed out", e.URL)
	default:
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is a successful page fetch.
type Result struct {
	URL    string
	Status int
	HTML   string
}

// Static fetches pages with a plain HTTP GET, for sites that render their
// county listings server-side.
type Static struct {
	client *resty.Client
}

// NewStatic creates a static fetcher with the given hard timeout. A zero
// timeout uses DefaultTimeout.
func NewStatic(timeout time.Duration) *Static {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", acceptHeader).
		SetHeader("Accept-Language", acceptLanguage)

	return &Static{client: client}
}

// Fetch retrieves the URL, returning the body and status on 2xx and a typed
// *Error otherwise. A single fetch failure is non-fatal to a batch; callers
// log it and move on, never retrying within a run.
func (f *Static) Fetch(ctx context.Context, url string) (*Result, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &Error{Kind: classify(err), URL: url, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &Error{Kind: FailStatus, URL: url, Status: resp.StatusCode()}
	}

	return &Result{
		URL:    url,
		Status: resp.StatusCode(),
		HTML:   string(resp.Body()),
	}, nil
}

// classify maps a transport error to a failure kind.
func classify(err error) FailKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailTimeout
	}
	return FailNetwork
}
