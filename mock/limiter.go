package mock

import (
	"context"

	"github.com/scoutkit/mailscout"
)

var _ mailscout.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of mailscout.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
