package crawl

import (
	"context"
	"sync"

	"github.com/scoutkit/mailscout"
	"golang.org/x/time/rate"
)

var _ mailscout.HostLimiter = (*HostLimiter)(nil)

// HostLimiter paces requests per host using token buckets with a burst of 1,
// so probing a dozen candidate paths on one site is spread out instead of
// arriving all at once. Limiters are created lazily per host.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the host's limiter allows another request. Returns an
// error only when the context is canceled first.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
