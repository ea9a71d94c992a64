package fetcher

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"immo-scanner/utils"
)

// BrowserFetcher renders the page in headless Chrome before reading its
// HTML, for markup the target only produces client-side. Images,
// stylesheets and fonts are not loaded; only the DOM matters here.
type BrowserFetcher struct {
	chromeBin    string
	waitSelector string
	timeout      time.Duration
	logger       *utils.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBrowserFetcher creates a BrowserFetcher that waits for waitSelector
// to appear before reading the rendered document. An empty chromeBin
// triggers an auto-detected browser binary.
func NewBrowserFetcher(chromeBin, waitSelector string, timeout time.Duration, logger *utils.Logger) *BrowserFetcher {
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	return &BrowserFetcher{
		chromeBin:    chromeBin,
		waitSelector: waitSelector,
		timeout:      timeout,
		logger:       logger,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch navigates to the page, waits for the configured selector and
// returns the rendered HTML. The deferred cancels tear down the tab and
// the browser process on every exit path, success or failure.
func (f *BrowserFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
		chromedp.UserAgent(f.identity()),
	)
	if f.chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(f.chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, f.timeout)
	defer cancelTimeout()

	f.logger.Debug("[fetch] navigating headless to %s", pageURL)

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(f.waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &UnreachableError{URL: pageURL, Err: err}
		}
		return "", fmt.Errorf("headless navigation to %s: %w", pageURL, err)
	}

	f.logger.Debug("[fetch] rendered %s — %d bytes", pageURL, len(html))
	return html, nil
}

func (f *BrowserFetcher) identity() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return PickIdentity(UserAgents, f.rng)
}

// findChromeBinary locates a Chrome/Chromium binary.
func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
