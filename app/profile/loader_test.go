package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lysyi3m/trend-scribe/app/cfg"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	profile, err := Load("", cfg.ModeRanked)
	if err != nil {
		t.Fatal(err)
	}

	if profile.Publication != "Hilaight" {
		t.Errorf("Expected publication 'Hilaight', got '%s'", profile.Publication)
	}
	if profile.Candidates != 5 {
		t.Errorf("Expected 5 candidates, got %d", profile.Candidates)
	}
	if profile.MinWords != 1000 || profile.MaxWords != 1500 {
		t.Errorf("Expected word range 1000-1500, got %d-%d", profile.MinWords, profile.MaxWords)
	}
	if profile.Sampling.Temperature != 0.85 || profile.Sampling.TopP != 0.95 {
		t.Errorf("Expected sampling 0.85/0.95, got %v/%v", profile.Sampling.Temperature, profile.Sampling.TopP)
	}
	if strings.Join(profile.Categories, ",") != "engineering,system-design,tech-news" {
		t.Errorf("Unexpected categories: %v", profile.Categories)
	}
}

func TestRandomDefaults(t *testing.T) {
	profile := Defaults(cfg.ModeRandom)

	if profile.FileSuffix != "ai-news" {
		t.Errorf("Expected file suffix 'ai-news', got '%s'", profile.FileSuffix)
	}
	if profile.MinWords != 900 || profile.MaxWords != 1200 {
		t.Errorf("Expected word range 900-1200, got %d-%d", profile.MinWords, profile.MaxWords)
	}
	if err := profile.Validate(cfg.ModeRandom); err != nil {
		t.Errorf("Expected random defaults to validate, got: %v", err)
	}
}

func TestLoadOverlaysSharedAndModeValues(t *testing.T) {
	path := writeProfile(t, `
publication: "Byte Notes"
tags: ["weekly"]

ranked:
  candidates: 3
  max_words: 1800
  sampling:
    temperature: 0.5

random:
  file_suffix: "daily-pick"
`)

	ranked, err := Load(path, cfg.ModeRanked)
	if err != nil {
		t.Fatal(err)
	}
	if ranked.Publication != "Byte Notes" {
		t.Errorf("Expected publication 'Byte Notes', got '%s'", ranked.Publication)
	}
	if len(ranked.Tags) != 1 || ranked.Tags[0] != "weekly" {
		t.Errorf("Expected tags [weekly], got %v", ranked.Tags)
	}
	if ranked.Candidates != 3 {
		t.Errorf("Expected 3 candidates, got %d", ranked.Candidates)
	}
	if ranked.MaxWords != 1800 || ranked.MinWords != 1000 {
		t.Errorf("Expected word range 1000-1800, got %d-%d", ranked.MinWords, ranked.MaxWords)
	}
	if ranked.Sampling.Temperature != 0.5 || ranked.Sampling.TopP != 0.95 {
		t.Errorf("Expected sampling 0.5/0.95, got %v/%v", ranked.Sampling.Temperature, ranked.Sampling.TopP)
	}

	random, err := Load(path, cfg.ModeRandom)
	if err != nil {
		t.Fatal(err)
	}
	if random.FileSuffix != "daily-pick" {
		t.Errorf("Expected file suffix 'daily-pick', got '%s'", random.FileSuffix)
	}
	if random.Candidates != 0 {
		t.Errorf("Expected ranked overrides not to leak into random mode, got %d candidates", random.Candidates)
	}
}

func TestLoadInvalidProfile(t *testing.T) {
	testCases := []string{
		"min_words: 2000\nmax_words: 1000\n",
		"sampling:\n  top_p: 1.5\n",
		"sampling:\n  temperature: 3\n",
		"categories: [\"\"]\n",
		"ranked:\n  candidates: -1\n",
	}

	for _, content := range testCases {
		path := writeProfile(t, content)
		if _, err := Load(path, cfg.ModeRanked); err == nil {
			t.Errorf("Expected error for profile %q", content)
		}
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeProfile(t, "publication: [unterminated\n")

	if _, err := Load(path, cfg.ModeRanked); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml"), cfg.ModeRanked); err == nil {
		t.Error("Expected error for missing profile file")
	}
}

func TestLoadRejectsUnsafeFileSuffix(t *testing.T) {
	testCases := []string{
		"file_suffix: ../../x\n",
		"file_suffix: news/today\n",
		"file_suffix: AI News\n",
	}

	for _, content := range testCases {
		path := writeProfile(t, content)
		if _, err := Load(path, cfg.ModeRandom); err == nil {
			t.Errorf("Expected error for profile %q", content)
		}
	}

	path := writeProfile(t, "file_suffix: weekly-ai-2\n")
	p, err := Load(path, cfg.ModeRandom)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.FileSuffix != "weekly-ai-2" {
		t.Errorf("Expected file suffix 'weekly-ai-2', got '%s'", p.FileSuffix)
	}
}
