package tasks

import (
	"context"

	"github.com/lysyi3m/trend-scribe/app/gemini"
	"github.com/lysyi3m/trend-scribe/app/source"
)

// StorySource yields ranked-able stories. Implementations never fail; an unreachable
// source returns an empty list.
type StorySource interface {
	TopStories(ctx context.Context) []source.Story
}

// TitleSource yields extra topic titles pooled in random mode.
type TitleSource interface {
	Titles(ctx context.Context) []source.Story
}

// Enricher attaches article excerpts to ranked candidates.
type Enricher interface {
	Enrich(ctx context.Context, stories []source.Story) []source.Story
}

// Generator turns a prompt into raw model text.
type Generator interface {
	Generate(ctx context.Context, prompt string, sampling gemini.Sampling) (string, error)
}
