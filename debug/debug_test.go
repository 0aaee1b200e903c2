package debug

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in %q", want, buf.String())
}

func TestLoggersEmitUntilCancelled(t *testing.T) {
	buf := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	ctx, cancel := context.WithCancel(context.Background())
	StartGoroutineLogger(ctx, 5*time.Millisecond, logger)
	StartMemLogger(ctx, 5*time.Millisecond, logger)
	waitFor(t, buf, "goroutine-stacks")
	waitFor(t, buf, "memstats")
	cancel()
}

func TestPeakRSS(t *testing.T) {
	rss, err := peakRSS()
	if runtime.GOOS != "linux" {
		if err == nil {
			t.Fatal("expected unsupported error")
		}
		return
	}
	if err != nil || rss == 0 {
		t.Fatalf("rss=%d err=%v", rss, err)
	}
}

func TestGoroutineAttrs(t *testing.T) {
	attrs := goroutineAttrs()
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attrs, got %d", len(attrs))
	}
	if a, ok := attrs[0].(slog.Attr); !ok || a.Key != "goroutines" || a.Value.Uint64() == 0 {
		t.Fatalf("unexpected goroutine attr %v", attrs[0])
	}
}
