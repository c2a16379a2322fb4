package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scoutkit/mailscout"
	"github.com/scoutkit/mailscout/crawl"
)

// renderReport writes the human-readable view of a discovery report.
func renderReport(w io.Writer, report *mailscout.Report) {
	succeeded := 0
	for _, s := range report.Crawled {
		if s.OK {
			succeeded++
		}
	}
	fmt.Fprintf(w, "Scanned %s: %d address(es) from %d/%d page(s)\n\n",
		report.Domain, len(report.Results), succeeded, len(report.Crawled))

	if len(report.Results) > 0 {
		fmt.Fprintln(w, "Results:")
		for _, r := range report.Results {
			fmt.Fprintf(w, "  %-6s  %-40s  %s\n", strings.ToUpper(string(r.Confidence)), r.Email, r.Reason)
		}
		fmt.Fprintln(w)
	}

	if len(report.Patterns) > 0 {
		fmt.Fprintln(w, "Pattern ideas:")
		fmt.Fprintf(w, "  %s\n\n", strings.Join(report.Patterns, ", "))
	}

	fmt.Fprintln(w, "Crawl log:")
	for _, s := range report.Crawled {
		status := "-"
		if s.Status > 0 {
			status = fmt.Sprintf("%d", s.Status)
		}
		line := fmt.Sprintf("  %-4s %-4s %s", okLabel(s.OK), status, crawl.TruncateURL(s.URL, 60))
		if s.Error != "" {
			line += " (" + s.Error + ")"
		}
		fmt.Fprintln(w, line)
	}
}

func okLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "fail"
}
