package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lysyi3m/trend-scribe/app/cfg"
	"github.com/lysyi3m/trend-scribe/app/gemini"
	"github.com/lysyi3m/trend-scribe/app/post"
	"github.com/lysyi3m/trend-scribe/app/profile"
	"github.com/lysyi3m/trend-scribe/app/selector"
	"github.com/lysyi3m/trend-scribe/app/source"
	"github.com/lysyi3m/trend-scribe/app/tasks"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	if appCfg == nil {
		// Help was shown
		return 0
	}

	setupLogger(appCfg)

	slog.Info("Starting Trend Scribe", "version", appCfg.Version, "mode", appCfg.Mode)

	prof, err := loadProfile(appCfg)
	if err != nil {
		slog.Error("Failed to load profile", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{}

	hackerNews := source.NewHackerNews(httpClient, appCfg.HNBaseURL, appCfg.HNLimit, appCfg.FetchTimeoutDuration(), appCfg.UserAgent)

	var arxiv tasks.TitleSource
	if appCfg.Mode == cfg.ModeRandom && !appCfg.SkipArxiv {
		arxiv = source.NewArxiv(httpClient, appCfg.ArxivURL, appCfg.FetchTimeoutDuration(), appCfg.UserAgent)
	}

	var enricher tasks.Enricher
	if appCfg.WithContext {
		enricher = source.NewContextExtractor(httpClient, appCfg.ContextChars, appCfg.FetchTimeoutDuration(), appCfg.UserAgent)
	}

	generator := gemini.NewClient(httpClient, appCfg.GeminiBaseURL, appCfg.GeminiModel, appCfg.GeminiAPIKey)

	task := tasks.NewGeneratePostTask(appCfg.Mode, prof, hackerNews, arxiv, enricher, generator,
		post.NewPublisher(appCfg.PostsDir), appCfg.GenerateTimeoutDuration())
	if appCfg.DryRun {
		task.DryRunOutput = os.Stdout
	}

	result, err := task.Execute(ctx)
	if err != nil {
		return handleError(err)
	}

	if result.DryRun {
		slog.Info("Dry run, nothing written", "title", result.Title)
		return 0
	}

	fmt.Println("Generated:", result.Path)
	return 0
}

// loadProfile resolves the publication profile and applies command-line overrides.
func loadProfile(c *cfg.Cfg) (profile.Profile, error) {
	prof, err := profile.Load(c.ProfilePath, c.Mode)
	if err != nil {
		return profile.Profile{}, err
	}

	if c.Candidates > 0 {
		prof.Candidates = c.Candidates
	}

	return prof, nil
}

func handleError(err error) int {
	if errors.Is(err, selector.ErrNoTopics) {
		fmt.Println("No trending stories found.")
		return 0
	}

	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		slog.Error("Gemini API returned an error", "status", apiErr.StatusCode, "body", apiErr.Body)
		return 1
	}

	slog.Error("Failed to generate post", "error", err)
	return 1
}

func setupLogger(c *cfg.Cfg) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
