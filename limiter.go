package mailscout

import "context"

// HostLimiter paces requests to a host. The crawl loop waits on it before
// every fetch so that probing a dozen paths does not hammer a small site.
type HostLimiter interface {
	// Wait blocks until the limiter allows another request to the host.
	// Returns an error only when the context is canceled.
	Wait(ctx context.Context, host string) error
}
