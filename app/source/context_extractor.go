package source

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
)

// ContextExtractor downloads a story's linked page and keeps a short readable excerpt.
type ContextExtractor struct {
	fetcher
	maxChars int
}

func NewContextExtractor(httpClient *http.Client, maxChars int, timeout time.Duration, userAgent string) *ContextExtractor {
	return &ContextExtractor{
		fetcher: fetcher{
			httpClient: httpClient,
			userAgent:  userAgent,
			timeout:    timeout,
		},
		maxChars: maxChars,
	}
}

// Enrich fills Context for each story with a link. Failures leave Context empty.
func (e *ContextExtractor) Enrich(ctx context.Context, stories []Story) []Story {
	enriched := make([]Story, len(stories))
	copy(enriched, stories)

	for i := range enriched {
		if enriched[i].URL == "" {
			continue
		}

		excerpt, err := e.Excerpt(ctx, enriched[i].URL)
		if err != nil {
			slog.Debug("Context extraction failed", "url", enriched[i].URL, "error", err)
			continue
		}
		enriched[i].Context = excerpt
	}

	return enriched
}

func (e *ContextExtractor) Excerpt(ctx context.Context, pageURL string) (string, error) {
	data, contentType, err := e.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return "", fmt.Errorf("content type is not HTML: %s", contentType)
	}

	return e.Run(data, pageURL)
}

func (e *ContextExtractor) Run(data []byte, pageURL string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(data), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", fmt.Errorf("no content extracted from HTML data")
	}

	return truncate(text, e.maxChars), nil
}

func truncate(s string, maxChars int) string {
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}

	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxChars])) + "…"
}
