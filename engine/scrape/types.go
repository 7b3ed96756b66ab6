// Package scrape extracts EV home-charger brand and electricity-tariff
// mentions from discussion-thread pages and aggregates them into tabular
// records.
package scrape

import "time"

// Source identifies which page-shape adapter produced a record.
type Source string

const (
	SourceReddit Source = "Reddit"
	SourceForum  Source = "Forum"
)

// Record is one brand mention extracted from a single comment or post.
// Records exist only for the duration of a run; they are appended in page
// order and handed to the CSV writer (or NATS publisher) at the end.
type Record struct {
	Source      Source `json:"source"`
	ThreadURL   string `json:"thread_url"`
	ThreadTitle string `json:"thread_title"`
	CommentID   string `json:"comment_id"`
	Author      string `json:"author"`
	// CapturedAt is the extraction wall-clock time, not the comment's
	// original post time. old.reddit markup carries no reliable timestamp,
	// so this is the best available value for the Comment_Date column.
	CapturedAt time.Time `json:"captured_at"`
	Brand      string    `json:"brand"`
	Tariff     string    `json:"tariff"`
	Reason     string    `json:"reason"`
	Text       string    `json:"text"`
}
