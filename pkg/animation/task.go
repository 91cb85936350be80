package animation

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the time between animation frames.
const DefaultInterval = 100 * time.Millisecond

// Run calls tick every interval until ctx is cancelled.
func Run(ctx context.Context, interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

// Start runs Run in the background. The returned stop function cancels the
// task and waits for it to exit; it is safe to call more than once.
func Start(parent context.Context, interval time.Duration, tick func()) (stop func()) {
	ctx, cancel := context.WithCancel(parent)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		Run(ctx, interval, tick)
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}
