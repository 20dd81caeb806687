package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"golang.org/x/net/html"
)

// BrowserParser parses with a headless Chrome DOMParser, for snippets
// where exact browser repair matters. The document Chrome builds is
// serialized and read back with HTMLParser.
type BrowserParser struct {
	ExecPath string
	Timeout  time.Duration
	Logger   *log.Logger

	mu        sync.Mutex
	allocator context.Context
	cancel    context.CancelFunc
	closed    bool
}

// ErrBrowserClosed is returned by Parse after Close.
var ErrBrowserClosed = errors.New("convert: browser parser closed")

// NewBrowserParser returns a parser that starts Chrome on first use.
// execPath may be empty to let chromedp locate the binary.
func NewBrowserParser(execPath string, logger *log.Logger) *BrowserParser {
	return &BrowserParser{ExecPath: execPath, Logger: logger}
}

// start launches the exec allocator on first use and returns it.
func (b *BrowserParser) start() (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBrowserClosed
	}
	if b.allocator == nil {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("mute-audio", true),
			chromedp.Flag("no-first-run", true),
			chromedp.Flag("no-default-browser-check", true),
			chromedp.Flag("disable-background-networking", true),
			chromedp.Flag("disable-extensions", true),
			chromedp.Flag("disable-sync", true),
		)
		if b.ExecPath != "" {
			opts = append(opts, chromedp.ExecPath(b.ExecPath))
		}
		b.allocator, b.cancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}
	return b.allocator, nil
}

// Close shuts down the browser, if it was started. Later Parse calls
// fail with ErrBrowserClosed.
func (b *BrowserParser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

func (b *BrowserParser) Parse(ctx context.Context, fragment string) (*html.Node, error) {
	allocator, err := b.start()
	if err != nil {
		return nil, err
	}
	taskCtx, cancelTab := chromedp.NewContext(allocator)
	defer cancelTab()

	if ctx != nil {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithCancel(taskCtx)
		go func() {
			select {
			case <-ctx.Done():
				cancel()
			case <-taskCtx.Done():
			}
		}()
		defer cancel()
	}
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, timeout)
	defer cancelTimeout()

	quoted, err := json.Marshal(fragment)
	if err != nil {
		return nil, fmt.Errorf("browser parse: quote fragment: %w", err)
	}
	expr := `new DOMParser().parseFromString(` + string(quoted) + `, "text/html").documentElement.outerHTML`

	var serialized string
	start := time.Now()
	err = chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			obj, exc, err := runtime.Evaluate(expr).WithReturnByValue(true).Do(ctx)
			if err != nil {
				return err
			}
			if exc != nil {
				return exc
			}
			return json.Unmarshal(obj.Value, &serialized)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser parse: %w", err)
	}
	if b.Logger != nil {
		b.Logger.Printf("DOMParser %d bytes in -> %d bytes out in %s", len(fragment), len(serialized), time.Since(start))
	}
	if strings.TrimSpace(serialized) == "" {
		return nil, ErrNoDocument
	}
	return HTMLParser{}.Parse(ctx, serialized)
}
