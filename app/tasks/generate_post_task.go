package tasks

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lysyi3m/trend-scribe/app/cfg"
	"github.com/lysyi3m/trend-scribe/app/gemini"
	"github.com/lysyi3m/trend-scribe/app/post"
	"github.com/lysyi3m/trend-scribe/app/profile"
	"github.com/lysyi3m/trend-scribe/app/prompt"
	"github.com/lysyi3m/trend-scribe/app/selector"
)

const untitledSlug = "untitled"

// Result describes what a successful run produced.
type Result struct {
	Path   string // empty on dry runs
	Title  string
	Topic  string
	Size   int // rendered document size in bytes
	DryRun bool
}

type GeneratePostTask struct {
	Task
	Mode            string
	profile         profile.Profile
	hackerNews      StorySource
	arxiv           TitleSource // nil when arXiv is skipped
	enricher        Enricher    // nil unless context extraction is enabled
	generator       Generator
	builder         *prompt.Builder
	publisher       *post.Publisher
	generateTimeout time.Duration

	// DryRunOutput receives the rendered document instead of the posts directory when set.
	DryRunOutput io.Writer
	Now          func() time.Time
	Rand         *rand.Rand
}

func NewGeneratePostTask(mode string, prof profile.Profile, hackerNews StorySource, arxiv TitleSource, enricher Enricher, generator Generator, publisher *post.Publisher, generateTimeout time.Duration) *GeneratePostTask {
	return &GeneratePostTask{
		Task:            NewTask(TaskTypeGeneratePost),
		Mode:            mode,
		profile:         prof,
		hackerNews:      hackerNews,
		arxiv:           arxiv,
		enricher:        enricher,
		generator:       generator,
		builder:         prompt.NewBuilder(prof),
		publisher:       publisher,
		generateTimeout: generateTimeout,
		Now:             func() time.Time { return time.Now().In(time.Local) },
	}
}

// Execute runs one gather, select, prompt, generate, parse and publish pass.
// selector.ErrNoTopics is returned when no source produced a topic.
func (t *GeneratePostTask) Execute(ctx context.Context) (*Result, error) {
	t.Start()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var (
		generated post.GeneratedPost
		topic     string
		suffix    string
		err       error
	)

	switch t.Mode {
	case cfg.ModeRandom:
		generated, topic, err = t.generateRandom(ctx)
		suffix = t.profile.FileSuffix
	default:
		generated, err = t.generateRanked(ctx)
		topic = generated.Title
		suffix = cmp.Or(post.Slugify(generated.Title), untitledSlug)
	}
	if err != nil {
		return nil, err
	}

	generated.Date = t.Now()

	document, err := post.Render(generated, t.profile)
	if err != nil {
		return nil, fmt.Errorf("failed to render post: %w", err)
	}

	result := &Result{Title: generated.Title, Topic: topic, Size: len(document)}

	if t.DryRunOutput != nil {
		if _, err := t.DryRunOutput.Write(document); err != nil {
			return nil, fmt.Errorf("failed to print post: %w", err)
		}
		result.DryRun = true
	} else {
		path, err := t.publisher.Write(post.Filename(generated.Date, suffix), document)
		if err != nil {
			return nil, err
		}
		result.Path = path
	}

	slog.Info("Task completed",
		"task_id", t.ID,
		"type", t.Type,
		"mode", t.Mode,
		"title", result.Title,
		"path", result.Path,
		"size", humanize.Bytes(uint64(result.Size)),
		"duration", t.GetDuration())

	return result, nil
}

func (t *GeneratePostTask) generateRanked(ctx context.Context) (post.GeneratedPost, error) {
	stories := t.hackerNews.TopStories(ctx)
	slog.Debug("Gathered stories", "source", "hackernews", "count", len(stories))

	candidates, err := selector.TopCandidates(stories, t.profile.Candidates)
	if err != nil {
		return post.GeneratedPost{}, err
	}

	if t.enricher != nil {
		candidates = t.enricher.Enrich(ctx, candidates)
	}

	for i, c := range candidates {
		slog.Debug("Candidate", "rank", i+1, "title", c.Title, "score", c.Score, "comments", c.Comments)
	}

	p, err := t.builder.Ranked(candidates)
	if err != nil {
		return post.GeneratedPost{}, err
	}

	raw, err := t.generate(ctx, p)
	if err != nil {
		return post.GeneratedPost{}, err
	}

	return post.ParseResponse(raw)
}

func (t *GeneratePostTask) generateRandom(ctx context.Context) (post.GeneratedPost, string, error) {
	pool := t.hackerNews.TopStories(ctx)
	slog.Debug("Gathered stories", "source", "hackernews", "count", len(pool))

	if t.arxiv != nil {
		titles := t.arxiv.Titles(ctx)
		slog.Debug("Gathered stories", "source", "arxiv", "count", len(titles))
		pool = append(pool, titles...)
	}

	story, err := selector.PickRandom(pool, t.Rand)
	if err != nil {
		return post.GeneratedPost{}, "", err
	}
	slog.Info("Selected topic", "title", story.Title, "source", story.Source)

	p, err := t.builder.Random(story.Title)
	if err != nil {
		return post.GeneratedPost{}, "", err
	}

	raw, err := t.generate(ctx, p)
	if err != nil {
		return post.GeneratedPost{}, "", err
	}

	return post.GeneratedPost{Title: story.Title, Content: raw}, story.Title, nil
}

func (t *GeneratePostTask) generate(ctx context.Context, p string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.generateTimeout)
	defer cancel()

	raw, err := t.generator.Generate(ctx, p, gemini.Sampling{
		Temperature: t.profile.Sampling.Temperature,
		TopP:        t.profile.Sampling.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate post: %w", err)
	}
	return raw, nil
}
