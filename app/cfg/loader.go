package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Generative API configuration
	GeminiAPIKey    string `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"API key for the Gemini generative API (required)" required:"true"`
	GeminiModel     string `long:"gemini-model" env:"GEMINI_MODEL" default:"gemini-2.5-flash" description:"Gemini model used for generation"`
	GeminiBaseURL   string `long:"gemini-base-url" env:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com" description:"Gemini API base URL"`
	GenerateTimeout int    `long:"generate-timeout" env:"GENERATE_TIMEOUT" default:"120" description:"Generation request timeout in seconds"`

	// Topic source configuration
	HNBaseURL    string `long:"hn-base-url" env:"HN_BASE_URL" default:"https://hacker-news.firebaseio.com" description:"Hacker News API base URL"`
	HNLimit      int    `long:"hn-limit" env:"HN_LIMIT" default:"20" description:"Number of top stories to fetch"`
	ArxivURL     string `long:"arxiv-url" env:"ARXIV_URL" default:"http://export.arxiv.org/api/query?search_query=cat:cs.AI&sortBy=submittedDate&sortOrder=descending&max_results=10" description:"arXiv Atom feed URL"`
	SkipArxiv    bool   `long:"skip-arxiv" env:"SKIP_ARXIV" description:"Do not pool arXiv titles in random mode"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Per-request timeout for topic fetches in seconds"`
	WithContext  bool   `long:"with-context" env:"WITH_CONTEXT" description:"Extract linked article text for ranked candidates"`
	Candidates   int    `long:"candidates" env:"CANDIDATES" description:"Number of top stories offered to the model in ranked mode (overrides the profile)"`
	ContextChars int    `long:"context-chars" env:"CONTEXT_CHARS" default:"1200" description:"Maximum characters of extracted article text per candidate"`

	// Output configuration
	Mode        string `long:"mode" env:"MODE" default:"ranked" choice:"ranked" choice:"random" description:"Topic selection mode"`
	PostsDir    string `long:"posts-dir" env:"POSTS_DIR" default:"_posts" description:"Directory the markdown post is written to"`
	ProfilePath string `long:"profile" env:"PROFILE" description:"YAML publication profile (optional)"`
	DryRun      bool   `long:"dry-run" env:"DRY_RUN" description:"Print the post to stdout instead of writing it"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Trend Scribe/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for post dates (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	LogFormat string `long:"log-format" env:"LOG_FORMAT" default:"text" choice:"text" choice:"json" description:"Log output format"`
}

// Load reads .env (if present), then flags and environment from os.Args.
func Load() (*Cfg, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return Parse(os.Args[1:])
}

// Parse builds the configuration from the given arguments and the process environment.
// A nil config with a nil error means help was requested.
func Parse(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		GeminiAPIKey:    raw.GeminiAPIKey,
		GeminiModel:     raw.GeminiModel,
		GeminiBaseURL:   raw.GeminiBaseURL,
		GenerateTimeout: raw.GenerateTimeout,
		HNBaseURL:       raw.HNBaseURL,
		HNLimit:         raw.HNLimit,
		ArxivURL:        raw.ArxivURL,
		SkipArxiv:       raw.SkipArxiv,
		FetchTimeout:    raw.FetchTimeout,
		WithContext:     raw.WithContext,
		Candidates:      raw.Candidates,
		ContextChars:    raw.ContextChars,
		Mode:            raw.Mode,
		PostsDir:        raw.PostsDir,
		ProfilePath:     raw.ProfilePath,
		DryRun:          raw.DryRun,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		LogFormat:       raw.LogFormat,
		Version:         GetVersion(),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	return cfg, nil
}

func (c *Cfg) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

func (c *Cfg) GenerateTimeoutDuration() time.Duration {
	return time.Duration(c.GenerateTimeout) * time.Second
}

func (c *Cfg) validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	if c.HNLimit < 1 || c.HNLimit > 500 {
		return fmt.Errorf("hn-limit must be between 1 and 500, got %d", c.HNLimit)
	}

	if c.Candidates < 0 {
		return fmt.Errorf("candidates must not be negative, got %d", c.Candidates)
	}

	positiveFields := map[string]int{
		"fetch-timeout":    c.FetchTimeout,
		"generate-timeout": c.GenerateTimeout,
		"context-chars":    c.ContextChars,
	}

	for fieldName, fieldValue := range positiveFields {
		if fieldValue <= 0 {
			return fmt.Errorf("%s must be positive", fieldName)
		}
	}

	return nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
