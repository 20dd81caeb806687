package convert

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"
)

func findChrome(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	t.Skip("no Chrome binary available")
	return ""
}

func TestBrowserParserMatchesHTMLParser(t *testing.T) {
	path := findChrome(t)
	bp := NewBrowserParser(path, nil)
	bp.Timeout = 30 * time.Second
	defer bp.Close()

	in := `<script async src="https://x.com/a.js"></script><body><div style="color: red">Hi</div></body>`
	want := New(WithIDs(SequentialIDs)).Convert(context.Background(), in)
	got := New(WithParser(bp), WithIDs(SequentialIDs)).Convert(context.Background(), in)
	if got.Head != want.Head || got.Body != want.Body {
		t.Fatalf("browser result differs:\n%+v\nwant\n%+v", got, want)
	}
}

func TestBrowserParserClosedRejectsParse(t *testing.T) {
	t.Parallel()
	bp := NewBrowserParser("", nil)
	bp.Close()
	bp.Close()
	if _, err := bp.Parse(context.Background(), "<p>x</p>"); !errors.Is(err, ErrBrowserClosed) {
		t.Fatalf("Parse after Close = %v, want ErrBrowserClosed", err)
	}
	res := New(WithParser(bp)).Convert(context.Background(), "<script>x()</script>")
	if !res.Empty() || len(res.Warnings) != 1 || res.Warnings[0].Code != WarnParseFailed {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestBrowserParserStartAndCloseConcurrently(t *testing.T) {
	t.Parallel()
	bp := NewBrowserParser("/nonexistent/chrome", nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = bp.start()
		}()
		go func() {
			defer wg.Done()
			bp.Close()
		}()
	}
	wg.Wait()
	if _, err := bp.start(); !errors.Is(err, ErrBrowserClosed) {
		t.Fatalf("start after Close = %v", err)
	}
}
