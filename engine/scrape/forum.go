package scrape

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/evscout/evscout/pkg/chargernlp"
)

// postSelectors covers the common container shapes across forum software.
// They are tried in order and the first selector yielding any matches wins;
// later selectors are ignored for that page. Best-effort by design.
var postSelectors = []string{
	"div.post", "article", "div.message", "div.post-body",
	"div.forum-post", "div.comment",
}

// authorSelectors are tried in order within a post container.
var authorSelectors = []string{"a.username", "span.author", "div.author"}

// parseForumThread maps generic forum markup to records.
func parseForumThread(pageURL string, body []byte) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := unknownTitle
	if t := chargernlp.Normalize(doc.Find("h1").First().Text()); t != "" {
		title = t
	} else if t := chargernlp.Normalize(doc.Find("title").First().Text()); t != "" {
		title = t
	}
	fmt.Printf("\nProcessing forum thread: %s\n", title)

	var posts *goquery.Selection
	for _, sel := range postSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			log.Printf("found %d posts using selector %s", s.Length(), sel)
			posts = s
			break
		}
	}
	if posts == nil {
		log.Printf("warning: no post containers matched in %s", pageURL)
		return nil, nil
	}

	now := time.Now()
	var records []Record
	posts.Each(func(idx int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			return
		}

		brand := chargernlp.MatchBrand(text)
		if brand == chargernlp.BrandUnknown {
			return
		}

		author := unknownAuthor
		for _, sel := range authorSelectors {
			if s := p.Find(sel).First(); s.Length() > 0 {
				if a := strings.TrimSpace(s.Text()); a != "" {
					author = a
				}
				break
			}
		}

		rec := Record{
			Source:      SourceForum,
			ThreadURL:   pageURL,
			ThreadTitle: title,
			CommentID:   fmt.Sprintf("forum_%d", idx),
			Author:      author,
			CapturedAt:  now,
			Brand:       brand,
			Tariff:      chargernlp.MatchTariff(text),
			Reason:      chargernlp.ExtractReason(text, brand),
			Text:        chargernlp.Normalize(text),
		}
		records = append(records, rec)
		fmt.Printf("Found forum post by %s: Brand=%s, Tariff=%s, Reason=%s\n",
			rec.Author, rec.Brand, rec.Tariff, rec.Reason)
	})

	return records, nil
}
