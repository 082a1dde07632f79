package pdf

import (
	"context"
	"runtime"
)

// Pool sizing constants. Each render launches its own browser process
// (roughly 200MB), so concurrency is capped for resource safety; this is
// not required for correctness.
const (
	MinPoolSize = 1
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for browser child processes.
	cpuDivisor = 2
)

// Pool bounds the number of concurrent renderer launches. Renderer
// processes themselves are never shared or reused; the pool only issues
// slots.
type Pool struct {
	sem chan struct{}
}

func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{sem: make(chan struct{}, n)}
}

// Acquire blocks until a slot is free or ctx is done.
func (p *Pool) Acquire(ctx context.Context) error {
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) Release() {
	<-p.sem
}

// Size returns the pool capacity.
func (p *Pool) Size() int {
	return cap(p.sem)
}

// ResolvePoolSize determines the pool size: explicit workers first,
// otherwise derived from GOMAXPROCS with browser headroom.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
