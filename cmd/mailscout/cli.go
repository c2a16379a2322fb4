package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/scoutkit/mailscout"
	"github.com/scoutkit/mailscout/crawl"
	scoutquery "github.com/scoutkit/mailscout/goquery"
	scouthttp "github.com/scoutkit/mailscout/http"
	scoutslog "github.com/scoutkit/mailscout/slog"
)

// Dependencies holds runtime context for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Domain string `arg:"" help:"Domain or URL to scan (e.g. acme.com)"`

	FirstName string   `help:"Contact first name for naming-convention guesses"`
	LastName  string   `help:"Contact last name for naming-convention guesses"`
	Keyword   []string `short:"k" help:"Department keyword expanded into extra paths (repeatable)"`

	Timeout    time.Duration `default:"10s" help:"Per-page fetch timeout"`
	MaxTargets int           `default:"12" help:"Maximum pages to crawl"`
	Sitemap    bool          `help:"Probe robots.txt and sitemap.xml for extra contact pages"`
	RPS        float64       `name:"rps" default:"2" help:"Politeness limit in requests per second (0 disables)"`

	JSON    bool `help:"Emit the full report as JSON"`
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`
}

// Run executes the scan.
func (c *CLI) Run(deps *Dependencies) error {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	fetcher := scouthttp.NewFetcher(scouthttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher:    scoutslog.NewLoggingFetcher(fetcher, logger),
		Extractor:  scoutslog.NewLoggingExtractor(scoutquery.NewExtractor(), logger),
		Logger:     logger,
		MaxTargets: c.MaxTargets,
	}
	if c.Sitemap {
		crawler.Sitemaps = scouthttp.NewSitemapService(nil)
	}
	if c.RPS > 0 {
		crawler.Limiter = crawl.NewHostLimiter(c.RPS)
	}

	var progress crawl.ProgressFunc
	if !c.JSON {
		progress = func(e crawl.ProgressEvent) {
			status := "ok"
			if !e.OK {
				status = "fail"
			}
			fmt.Fprintf(deps.Stderr, "[%d/%d] %-4s %s\n", e.Index, e.Total, status, crawl.TruncateURL(e.URL, 60))
		}
	}

	report, err := crawler.Run(deps.Ctx, &mailscout.Request{
		Domain:    c.Domain,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Keywords:  c.Keyword,
	}, progress)
	if err != nil {
		return fmt.Errorf("%s", mailscout.ErrorMessage(err))
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	renderReport(deps.Stdout, report)
	return nil
}
