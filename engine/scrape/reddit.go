package scrape

import (
	"bytes"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/evscout/evscout/pkg/chargernlp"
)

const (
	unknownTitle  = "Unknown Title"
	unknownAuthor = "Unknown"
)

// IsRedditURL reports whether raw points at Reddit.
func IsRedditURL(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "reddit.com")
}

// OldRedditURL rewrites Reddit URLs to the old.reddit.com host, which still
// serves server-rendered HTML with stable class names. Both bare and
// www-prefixed hosts are handled; non-Reddit URLs pass through unchanged.
func OldRedditURL(raw string) string {
	if !IsRedditURL(raw) {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	host := strings.ToLower(u.Hostname())
	if host == "reddit.com" || strings.HasSuffix(host, ".reddit.com") {
		u.Host = "old.reddit.com"
	}
	return u.String()
}

// parseRedditThread maps old.reddit comment markup to records. Only comments
// already present in the fetched HTML are visible; collapsed "load more"
// branches are not expanded.
func parseRedditThread(pageURL string, body []byte) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	if doc.Find("div.commentarea").Length() == 0 {
		log.Printf("warning: no comment area found in %s, page may be inaccessible or empty", pageURL)
		return nil, nil
	}

	title := unknownTitle
	if t := chargernlp.Normalize(doc.Find("a.title").First().Text()); t != "" {
		title = t
	}
	fmt.Printf("\nProcessing Reddit thread: %s\n", title)

	comments := doc.Find("div.comment")
	log.Printf("found %d loaded comments in %s", comments.Length(), pageURL)
	if comments.Length() == 0 {
		log.Printf("warning: no comments found in %s, check markup or comment availability", pageURL)
	}

	now := time.Now()
	var records []Record
	comments.Each(func(idx int, c *goquery.Selection) {
		text := strings.TrimSpace(c.Find("div.usertext-body").First().Text())
		if text == "" || text == "[deleted]" || text == "[removed]" {
			return
		}

		brand := chargernlp.MatchBrand(text)
		if brand == chargernlp.BrandUnknown {
			return
		}

		author := strings.TrimSpace(c.Find("a.author").First().Text())
		if author == "" {
			author = unknownAuthor
		}

		rec := Record{
			Source:      SourceReddit,
			ThreadURL:   pageURL,
			ThreadTitle: title,
			CommentID:   c.AttrOr("data-fullname", fmt.Sprintf("web_%d", idx)),
			Author:      author,
			CapturedAt:  now,
			Brand:       brand,
			Tariff:      chargernlp.MatchTariff(text),
			Reason:      chargernlp.ExtractReason(text, brand),
			Text:        chargernlp.Normalize(text),
		}
		records = append(records, rec)
		fmt.Printf("Found comment by %s: Brand=%s, Tariff=%s, Reason=%s\n",
			rec.Author, rec.Brand, rec.Tariff, rec.Reason)
	})

	return records, nil
}
