package renderer

import (
	"context"
	"time"
)

// ProgressSource reports sample progress; *Renderer implements it
type ProgressSource interface {
	Progress() (done, total uint64)
}

// WatchProgress polls source every interval and passes the counters to fn until ctx is done
func WatchProgress(ctx context.Context, source ProgressSource, interval time.Duration, fn func(done, total uint64)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(source.Progress())
		}
	}
}
