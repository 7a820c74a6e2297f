package source

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

type Arxiv struct {
	fetcher
	feedURL      string
	gofeedParser *gofeed.Parser
}

func NewArxiv(httpClient *http.Client, feedURL string, timeout time.Duration, userAgent string) *Arxiv {
	return &Arxiv{
		fetcher: fetcher{
			httpClient: httpClient,
			userAgent:  userAgent,
			timeout:    timeout,
		},
		feedURL:      feedURL,
		gofeedParser: gofeed.NewParser(),
	}
}

// Titles returns the titles of the feed entries in feed order. Any failure yields an empty list.
func (a *Arxiv) Titles(ctx context.Context) []Story {
	data, _, err := a.fetch(ctx, a.feedURL)
	if err != nil {
		slog.Warn("Failed to fetch arXiv feed", "error", err)
		return []Story{}
	}

	stories, err := a.Parse(data)
	if err != nil {
		slog.Warn("Failed to parse arXiv feed", "error", err)
		return []Story{}
	}

	slog.Debug("Fetched arXiv entries", "count", len(stories))
	return stories
}

func (a *Arxiv) Parse(data []byte) ([]Story, error) {
	feed, err := a.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	stories := make([]Story, 0, len(feed.Items))
	for _, item := range feed.Items {
		// arXiv wraps long titles across lines
		title := strings.Join(strings.Fields(item.Title), " ")
		if title == "" {
			continue
		}

		stories = append(stories, Story{
			Title:  title,
			URL:    item.Link,
			Source: SourceArxiv,
		})
	}

	return stories, nil
}
