package cfg

import (
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	// Test that version is at least "dev" or "unknown"
	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestParseDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("Expected model 'gemini-2.5-flash', got '%s'", cfg.GeminiModel)
	}
	if cfg.Mode != ModeRanked {
		t.Errorf("Expected mode '%s', got '%s'", ModeRanked, cfg.Mode)
	}
	if cfg.HNLimit != 20 {
		t.Errorf("Expected hn limit 20, got %d", cfg.HNLimit)
	}
	if cfg.PostsDir != "_posts" {
		t.Errorf("Expected posts dir '_posts', got '%s'", cfg.PostsDir)
	}
	if cfg.FetchTimeoutDuration() != 10*time.Second {
		t.Errorf("Expected fetch timeout 10s, got %v", cfg.FetchTimeoutDuration())
	}
	if cfg.GenerateTimeoutDuration() != 120*time.Second {
		t.Errorf("Expected generate timeout 120s, got %v", cfg.GenerateTimeoutDuration())
	}
	if cfg.DryRun {
		t.Error("Expected dry run to be disabled by default")
	}
	if cfg.Version == "" {
		t.Error("Expected version to be set")
	}
}

func TestParseFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("HN_LIMIT", "12")

	cfg, err := Parse([]string{"--mode", "random", "--hn-limit", "25", "--skip-arxiv", "--posts-dir", "out"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Mode != ModeRandom {
		t.Errorf("Expected mode '%s', got '%s'", ModeRandom, cfg.Mode)
	}
	if cfg.HNLimit != 25 {
		t.Errorf("Expected hn limit 25, got %d", cfg.HNLimit)
	}
	if !cfg.SkipArxiv {
		t.Error("Expected skip arxiv to be enabled")
	}
	if cfg.PostsDir != "out" {
		t.Errorf("Expected posts dir 'out', got '%s'", cfg.PostsDir)
	}
}

func TestParseCandidates(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Candidates != 0 {
		t.Errorf("Expected candidates to default to 0 (profile value), got %d", cfg.Candidates)
	}

	t.Setenv("CANDIDATES", "7")
	cfg, err = Parse([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Candidates != 7 {
		t.Errorf("Expected candidates 7 from environment, got %d", cfg.Candidates)
	}

	cfg, err = Parse([]string{"--candidates", "3"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Candidates != 3 {
		t.Errorf("Expected candidates 3 from flag, got %d", cfg.Candidates)
	}
}

func TestParseMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Parse([]string{})
	if err == nil {
		t.Fatal("Expected error when GEMINI_API_KEY is missing")
	}
	if cfg != nil {
		t.Error("Expected nil config on error")
	}
}

func TestParseInvalidMode(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	if _, err := Parse([]string{"--mode", "weekly"}); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestParseInvalidLimits(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	testCases := [][]string{
		{"--hn-limit", "0"},
		{"--hn-limit", "501"},
		{"--fetch-timeout", "0"},
		{"--generate-timeout", "-1"},
		{"--context-chars", "0"},
		{"--candidates", "-1"},
	}

	for _, args := range testCases {
		if _, err := Parse(args); err == nil {
			t.Errorf("Expected error for args %v", args)
		}
	}
}

func TestParseHelp(t *testing.T) {
	cfg, err := Parse([]string{"--help"})
	if err != nil {
		t.Fatalf("Expected no error for help, got: %v", err)
	}
	if cfg != nil {
		t.Error("Expected nil config when help is requested")
	}
}
