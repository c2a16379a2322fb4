package crawl_test

import (
	"strings"
	"testing"

	"github.com/scoutkit/mailscout/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargets(t *testing.T) {
	t.Parallel()

	t.Run("thirteen fixed paths without keywords", func(t *testing.T) {
		t.Parallel()

		targets := crawl.Targets("https://acme.com", nil)
		require.Len(t, targets, 13)
		assert.Equal(t, "https://acme.com/", targets[0])
		assert.Contains(t, targets, "https://acme.com/about")
		assert.Contains(t, targets, "https://acme.com/contact-us")
		assert.Contains(t, targets, "https://acme.com/jobs")
	})

	t.Run("each keyword adds five templated paths", func(t *testing.T) {
		t.Parallel()

		targets := crawl.Targets("https://acme.com", []string{"engineering"})
		require.Len(t, targets, 18)
		assert.Equal(t, []string{
			"https://acme.com/engineering",
			"https://acme.com/team/engineering",
			"https://acme.com/contact/engineering",
			"https://acme.com/departments/engineering",
			"https://acme.com/people/engineering",
		}, targets[13:])
	})

	t.Run("keywords are slugified", func(t *testing.T) {
		t.Parallel()

		targets := crawl.Targets("https://acme.com", []string{"  Customer   Success!! "})
		assert.Contains(t, targets, "https://acme.com/customer-success")
		assert.Contains(t, targets, "https://acme.com/team/customer-success")
	})

	t.Run("empty-after-sanitization keywords are skipped", func(t *testing.T) {
		t.Parallel()

		targets := crawl.Targets("https://acme.com", []string{"!!!", "  ", "---"})
		assert.Len(t, targets, 13)
	})

	t.Run("duplicates are dropped, first occurrence wins", func(t *testing.T) {
		t.Parallel()

		// The keyword "contact" collides with the fixed /contact path.
		targets := crawl.Targets("https://acme.com", []string{"contact"})
		count := 0
		for _, target := range targets {
			if target == "https://acme.com/contact" {
				count++
			}
		}
		assert.Equal(t, 1, count)
		assert.Len(t, targets, 17)
	})

	t.Run("preserves explicit http origins", func(t *testing.T) {
		t.Parallel()

		targets := crawl.Targets("http://acme.com", nil)
		for _, target := range targets {
			assert.True(t, strings.HasPrefix(target, "http://acme.com/"), target)
		}
	})
}
