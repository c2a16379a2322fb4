package crawl_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/scoutkit/mailscout"
	"github.com/scoutkit/mailscout/crawl"
	scoutquery "github.com/scoutkit/mailscout/goquery"
	"github.com/scoutkit/mailscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// okFetcher returns 200 with the given body for every URL.
func okFetcher(body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) *mailscout.FetchOutcome {
			return &mailscout.FetchOutcome{URL: url, OK: true, Status: http.StatusOK, Body: body}
		},
	}
}

// failFetcher fails every URL with a 404.
func failFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) *mailscout.FetchOutcome {
			return &mailscout.FetchOutcome{URL: url, Status: http.StatusNotFound, Err: "HTTP 404 for " + url}
		},
	}
}

// noHits is an extractor that never finds anything.
func noHits() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html, pageURL string) ([]mailscout.EmailHit, error) {
			return nil, nil
		},
	}
}

func TestCrawler_Run(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid input before crawling", func(t *testing.T) {
		t.Parallel()

		fetched := false
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) *mailscout.FetchOutcome {
					fetched = true
					return &mailscout.FetchOutcome{URL: url}
				},
			},
			Extractor: noHits(),
		}

		_, err := c.Run(context.Background(), &mailscout.Request{Domain: "x"}, nil)
		require.Error(t, err)
		assert.Equal(t, mailscout.EINVALID, mailscout.ErrorCode(err))
		assert.False(t, fetched)
	})

	t.Run("rejects placeholder domains before crawling", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{Fetcher: failFetcher(), Extractor: noHits()}

		_, err := c.Run(context.Background(), &mailscout.Request{Domain: "example.com"}, nil)
		require.Error(t, err)
		assert.Equal(t, mailscout.EBLOCKED, mailscout.ErrorCode(err))
	})

	t.Run("caps targets at twelve and keeps generation order", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) *mailscout.FetchOutcome {
					fetched = append(fetched, url)
					return &mailscout.FetchOutcome{URL: url, Status: http.StatusNotFound, Err: "HTTP 404"}
				},
			},
			Extractor: noHits(),
		}

		report, err := c.Run(context.Background(), &mailscout.Request{
			Domain:   "acme.com",
			Keywords: []string{"engineering", "sales"},
		}, nil)
		require.NoError(t, err)

		require.Len(t, report.Crawled, 12)
		require.Len(t, fetched, 12)
		for i, summary := range report.Crawled {
			assert.Equal(t, fetched[i], summary.URL)
			assert.False(t, summary.OK)
		}
	})

	t.Run("failures are recorded and crawling continues", func(t *testing.T) {
		t.Parallel()

		calls := 0
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) *mailscout.FetchOutcome {
					calls++
					if calls == 1 {
						return &mailscout.FetchOutcome{URL: url, Err: "Request timed out"}
					}
					return &mailscout.FetchOutcome{URL: url, OK: true, Status: http.StatusOK, Body: "<html></html>"}
				},
			},
			Extractor: noHits(),
		}

		report, err := c.Run(context.Background(), &mailscout.Request{Domain: "acme.com"}, nil)
		require.NoError(t, err)
		require.Len(t, report.Crawled, 12)
		assert.False(t, report.Crawled[0].OK)
		assert.Equal(t, "Request timed out", report.Crawled[0].Error)
		assert.Zero(t, report.Crawled[0].Status)
		for _, summary := range report.Crawled[1:] {
			assert.True(t, summary.OK)
			assert.NotEmpty(t, summary.Fingerprint)
		}
	})

	t.Run("aggregates one result across repeated pages", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher: okFetcher("<p>mail info@acme.com</p>"),
			Extractor: &mock.Extractor{
				ExtractFn: func(html, pageURL string) ([]mailscout.EmailHit, error) {
					return []mailscout.EmailHit{
						{Email: "info@acme.com", URL: pageURL, Via: mailscout.ViaText},
					}, nil
				},
			},
		}

		report, err := c.Run(context.Background(), &mailscout.Request{Domain: "acme.com"}, nil)
		require.NoError(t, err)
		require.Len(t, report.Results, 1)
		assert.Equal(t, "info@acme.com", report.Results[0].Email)
		assert.Len(t, report.Results[0].Sources, 12) // one per crawled page
	})

	t.Run("irrelevant addresses are filtered out", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher: okFetcher("<html></html>"),
			Extractor: &mock.Extractor{
				ExtractFn: func(html, pageURL string) ([]mailscout.EmailHit, error) {
					return []mailscout.EmailHit{
						{Email: "jane@unrelated.org", URL: pageURL, Via: mailscout.ViaMailto},
					}, nil
				},
			},
		}

		report, err := c.Run(context.Background(), &mailscout.Request{Domain: "acme.com"}, nil)
		require.NoError(t, err)
		assert.Empty(t, report.Results)
	})

	t.Run("all fetches failing still yields named pattern guesses", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{Fetcher: failFetcher(), Extractor: noHits()}

		report, err := c.Run(context.Background(), &mailscout.Request{
			Domain:    "acme.com",
			FirstName: "Jane",
			LastName:  "Doe",
		}, nil)
		require.NoError(t, err)

		require.Len(t, report.Results, 7)
		emails := make([]string, len(report.Results))
		for i, r := range report.Results {
			assert.Equal(t, mailscout.ConfidenceLow, r.Confidence)
			require.Len(t, r.Sources, 1)
			assert.Equal(t, mailscout.ViaPattern, r.Sources[0].Via)
			emails[i] = r.Email
		}
		assert.ElementsMatch(t, []string{
			"jane.doe@acme.com",
			"janedoe@acme.com",
			"j.doe@acme.com",
			"jane@acme.com",
			"doe@acme.com",
			"janed@acme.com",
			"jdoe@acme.com",
		}, emails)
		assert.Len(t, report.Patterns, 16)
	})

	t.Run("discovered addresses are not re-registered as patterns", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher: okFetcher("<html></html>"),
			Extractor: &mock.Extractor{
				ExtractFn: func(html, pageURL string) ([]mailscout.EmailHit, error) {
					if strings.HasSuffix(pageURL, "/contact") {
						return []mailscout.EmailHit{
							{Email: "jane.doe@acme.com", URL: pageURL, Via: mailscout.ViaMailto},
						}, nil
					}
					return nil, nil
				},
			},
		}

		report, err := c.Run(context.Background(), &mailscout.Request{
			Domain:    "acme.com",
			FirstName: "Jane",
			LastName:  "Doe",
		}, nil)
		require.NoError(t, err)

		for _, r := range report.Results {
			if r.Email == "jane.doe@acme.com" {
				assert.Equal(t, mailscout.ConfidenceHigh, r.Confidence)
				require.Len(t, r.Sources, 1)
				assert.Equal(t, mailscout.ViaMailto, r.Sources[0].Via)
			}
		}
		// 1 discovered + 6 remaining named guesses.
		assert.Len(t, report.Results, 7)
	})

	t.Run("no named patterns with only one name", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{Fetcher: failFetcher(), Extractor: noHits()}

		report, err := c.Run(context.Background(), &mailscout.Request{
			Domain:    "acme.com",
			FirstName: "Jane",
		}, nil)
		require.NoError(t, err)
		assert.Empty(t, report.Results)
		assert.Len(t, report.Patterns, 9)
	})

	t.Run("sitemap targets are appended before the cap", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) *mailscout.FetchOutcome {
					fetched = append(fetched, url)
					return &mailscout.FetchOutcome{URL: url, Err: "HTTP 404"}
				},
			},
			Extractor: noHits(),
			Sitemaps: &mock.SitemapService{
				DiscoverContactURLsFn: func(ctx context.Context, origin string) ([]string, error) {
					return []string{origin + "/our-story/contact"}, nil
				},
			},
			MaxTargets: 20,
		}

		report, err := c.Run(context.Background(), &mailscout.Request{Domain: "acme.com"}, nil)
		require.NoError(t, err)
		assert.Len(t, report.Crawled, 14)
		assert.Contains(t, fetched, "https://acme.com/our-story/contact")
	})

	t.Run("limiter is consulted per target", func(t *testing.T) {
		t.Parallel()

		waits := 0
		c := &crawl.Crawler{
			Fetcher:   failFetcher(),
			Extractor: noHits(),
			Limiter: &mock.HostLimiter{
				WaitFn: func(ctx context.Context, host string) error {
					waits++
					assert.Equal(t, "acme.com", host)
					return nil
				},
			},
		}

		_, err := c.Run(context.Background(), &mailscout.Request{Domain: "acme.com"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 12, waits)
	})

	t.Run("progress callback receives one event per target", func(t *testing.T) {
		t.Parallel()

		var events []crawl.ProgressEvent
		c := &crawl.Crawler{Fetcher: failFetcher(), Extractor: noHits()}

		_, err := c.Run(context.Background(), &mailscout.Request{Domain: "acme.com"}, func(e crawl.ProgressEvent) {
			events = append(events, e)
		})
		require.NoError(t, err)

		require.Len(t, events, 12)
		assert.Equal(t, 1, events[0].Index)
		assert.Equal(t, 12, events[0].Total)
		assert.Equal(t, 12, events[11].Index)
		for _, e := range events {
			assert.False(t, e.OK)
			assert.NotEmpty(t, e.Err)
		}
	})
}

// TestCrawler_Run_EndToEnd exercises the crawler with the real goquery
// extractor against a canned contact page.
func TestCrawler_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	page := `<html><body>
		<a href="mailto:jane@acme.com">Jane</a>
		<p>reach us at info@acme.com for help</p>
	</body></html>`

	c := &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) *mailscout.FetchOutcome {
				if url == "https://acme.com/" {
					return &mailscout.FetchOutcome{URL: url, OK: true, Status: http.StatusOK, Body: page}
				}
				return &mailscout.FetchOutcome{URL: url, Status: http.StatusNotFound, Err: "HTTP 404 for " + url}
			},
		},
		Extractor: scoutquery.NewExtractor(),
	}

	report, err := c.Run(context.Background(), &mailscout.Request{Domain: "acme.com"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "acme.com", report.Domain)
	require.Len(t, report.Results, 2)

	jane := report.Results[0]
	assert.Equal(t, "jane@acme.com", jane.Email)
	assert.Equal(t, mailscout.ConfidenceHigh, jane.Confidence)
	require.Len(t, jane.Sources, 1)
	assert.Equal(t, mailscout.ViaMailto, jane.Sources[0].Via)
	assert.Equal(t, "Jane", jane.Sources[0].Context)

	info := report.Results[1]
	assert.Equal(t, "info@acme.com", info.Email)
	assert.Equal(t, mailscout.ConfidenceMedium, info.Confidence)
	require.Len(t, info.Sources, 1)
	assert.Equal(t, mailscout.ViaText, info.Sources[0].Via)
	assert.Contains(t, info.Sources[0].Context, "reach us at info@acme.com for help")
}
