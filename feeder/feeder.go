package feeder

import (
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedItem is one entry pulled from an external news source.
type FeedItem struct {
	Title       string
	Link        string
	Description string
	Content     string
	PublishedAt time.Time
}

// FetchFeed fetches and parses the RSS feed at rssURL.
// If limit is greater than 0, only the first limit items are returned.
func FetchFeed(rssURL string, limit int) ([]FeedItem, error) {
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: 20 * time.Second}

	feed, err := fp.ParseURL(rssURL)
	if err != nil {
		return nil, err
	}
	return collect(feed, limit), nil
}

// ParseFeed parses raw RSS/Atom XML; used by tests and offline imports.
func ParseFeed(raw string, limit int) ([]FeedItem, error) {
	feed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		return nil, err
	}
	return collect(feed, limit), nil
}

func collect(feed *gofeed.Feed, limit int) []FeedItem {
	var items []FeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items
}
