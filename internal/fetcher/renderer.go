package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// DefaultSettleDelay gives client-side rendering time to finish after
	// the page reports ready.
	DefaultSettleDelay = 3 * time.Second

	// DefaultRenderTimeout caps one full page load including the settle
	// delay.
	DefaultRenderTimeout = 30 * time.Second
)

// Renderer loads a URL in a rendering engine and returns the fully hydrated
// HTML along with the rendered body text. Implementations must isolate each
// page load so one page's failure cannot corrupt another.
type Renderer interface {
	Render(ctx context.Context, url string) (html, bodyText string, err error)
}

// ChromeRenderer renders pages in headless Chrome. Each Render call runs in
// its own browser tab, closed when the call returns regardless of outcome.
type ChromeRenderer struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	settle   time.Duration
	timeout  time.Duration
}

// NewChromeRenderer launches a shared headless Chrome allocator. Close must
// be called to shut the browser down.
func NewChromeRenderer(ctx context.Context) (*ChromeRenderer, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(UserAgent),
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)

	return &ChromeRenderer{
		allocCtx: allocCtx,
		cancel:   cancel,
		settle:   DefaultSettleDelay,
		timeout:  DefaultRenderTimeout,
	}, nil
}

// SetSettleDelay overrides the post-load settle delay.
func (r *ChromeRenderer) SetSettleDelay(d time.Duration) {
	r.settle = d
}

// Render loads the URL, waits for the document plus the settle delay, and
// extracts the hydrated HTML and rendered body text.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, string, error) {
	tabCtx, cancelTab := chromedp.NewContext(r.allocCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	// Propagate caller cancellation into the tab.
	go func() {
		select {
		case <-ctx.Done():
			cancelTab()
		case <-tabCtx.Done():
		}
	}()

	var html, bodyText string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Sleep(r.settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		chromedp.Evaluate("document.body.innerText", &bodyText),
	)
	if err != nil {
		kind := FailNetwork
		if tabCtx.Err() == context.DeadlineExceeded {
			kind = FailTimeout
		}
		return "", "", &Error{Kind: kind, URL: url, Err: fmt.Errorf("rendering page: %w", err)}
	}

	return html, bodyText, nil
}

// Close shuts down the shared browser process.
func (r *ChromeRenderer) Close() {
	r.cancel()
}
