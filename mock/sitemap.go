package mock

import (
	"context"

	"github.com/scoutkit/mailscout"
)

var _ mailscout.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of mailscout.SitemapService.
type SitemapService struct {
	DiscoverContactURLsFn func(ctx context.Context, origin string) ([]string, error)
}

func (s *SitemapService) DiscoverContactURLs(ctx context.Context, origin string) ([]string, error) {
	return s.DiscoverContactURLsFn(ctx, origin)
}
