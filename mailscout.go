// Package mailscout discovers likely organizational email addresses for a
// domain. It crawls a bounded set of public pages (about, team, contact and
// similar), extracts address evidence from mailto links and page text, and
// supplements findings with naming-convention guesses.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, slog/).
package mailscout
