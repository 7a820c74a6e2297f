package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type HackerNews struct {
	fetcher
	baseURL string
	limit   int
}

func NewHackerNews(httpClient *http.Client, baseURL string, limit int, timeout time.Duration, userAgent string) *HackerNews {
	return &HackerNews{
		fetcher: fetcher{
			httpClient: httpClient,
			userAgent:  userAgent,
			timeout:    timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   limit,
	}
}

// TopStories returns titled top stories in list order. Any failure yields an empty list.
func (h *HackerNews) TopStories(ctx context.Context) []Story {
	stories, err := h.fetchTopStories(ctx)
	if err != nil {
		slog.Warn("Failed to fetch Hacker News stories", "error", err)
		return []Story{}
	}

	slog.Debug("Fetched Hacker News stories", "count", len(stories))
	return stories
}

func (h *HackerNews) fetchTopStories(ctx context.Context) ([]Story, error) {
	data, _, err := h.fetch(ctx, h.baseURL+"/v0/topstories.json")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top stories: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode top stories: %w", err)
	}

	if len(ids) > h.limit {
		ids = ids[:h.limit]
	}

	stories := make([]Story, 0, len(ids))
	for _, id := range ids {
		item, err := h.fetchItem(ctx, id)
		if err != nil {
			return nil, err
		}

		// Deleted items decode as JSON null
		if item == nil || item.Title == nil || *item.Title == "" {
			continue
		}

		stories = append(stories, Story{
			ID:       item.ID,
			Title:    *item.Title,
			URL:      item.URL,
			Score:    item.Score,
			Comments: item.Descendants,
			Source:   SourceHackerNews,
		})
	}

	return stories, nil
}

func (h *HackerNews) fetchItem(ctx context.Context, id int) (*hnItem, error) {
	data, _, err := h.fetch(ctx, fmt.Sprintf("%s/v0/item/%d.json", h.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item %d: %w", id, err)
	}

	var item *hnItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to decode item %d: %w", id, err)
	}

	return item, nil
}
