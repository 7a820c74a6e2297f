package profile

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/trend-scribe/app/cfg"
)

var fileSuffixRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// Defaults returns the built-in profile for a selection mode.
func Defaults(mode string) Profile {
	switch mode {
	case cfg.ModeRandom:
		return Profile{
			Publication: "Hilaight",
			Categories:  []string{"ai", "tech-news"},
			Tags:        []string{"trending", "ai-news"},
			MinWords:    900,
			MaxWords:    1200,
			FileSuffix:  "ai-news",
			Sampling:    Sampling{Temperature: 0.8, TopP: 0.9},
		}
	default:
		return Profile{
			Publication: "Hilaight",
			Categories:  []string{"engineering", "system-design", "tech-news"},
			Tags:        []string{"trending", "deep-dive"},
			MinWords:    1000,
			MaxWords:    1500,
			Candidates:  5,
			Sampling:    Sampling{Temperature: 0.85, TopP: 0.95},
		}
	}
}

// Load returns the profile for mode, overlaid with the YAML file at path when path is set.
func Load(path, mode string) (Profile, error) {
	profile := Defaults(mode)

	if path == "" {
		return profile, nil
	}

	doc, err := parseDocument(path)
	if err != nil {
		return Profile{}, err
	}

	overlay(&profile, doc.Profile)
	switch mode {
	case cfg.ModeRanked:
		if doc.Ranked != nil {
			overlay(&profile, *doc.Ranked)
		}
	case cfg.ModeRandom:
		if doc.Random != nil {
			overlay(&profile, *doc.Random)
		}
	}

	if err := profile.Validate(mode); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	slog.Debug("Profile loaded", "path", path, "mode", mode, "publication", profile.Publication)

	return profile, nil
}

func parseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &doc, nil
}

// overlay copies every non-zero field of src onto dst.
func overlay(dst *Profile, src Profile) {
	if src.Publication != "" {
		dst.Publication = src.Publication
	}
	if src.Categories != nil {
		dst.Categories = src.Categories
	}
	if src.Tags != nil {
		dst.Tags = src.Tags
	}
	if src.MinWords != 0 {
		dst.MinWords = src.MinWords
	}
	if src.MaxWords != 0 {
		dst.MaxWords = src.MaxWords
	}
	if src.Candidates != 0 {
		dst.Candidates = src.Candidates
	}
	if src.FileSuffix != "" {
		dst.FileSuffix = src.FileSuffix
	}
	if src.Sampling.Temperature != 0 {
		dst.Sampling.Temperature = src.Sampling.Temperature
	}
	if src.Sampling.TopP != 0 {
		dst.Sampling.TopP = src.Sampling.TopP
	}
}

func (p *Profile) Validate(mode string) error {
	if p.Publication == "" {
		return fmt.Errorf("publication is required")
	}

	if p.MinWords <= 0 || p.MaxWords <= 0 {
		return fmt.Errorf("word range must be positive")
	}
	if p.MinWords > p.MaxWords {
		return fmt.Errorf("min_words (%d) exceeds max_words (%d)", p.MinWords, p.MaxWords)
	}

	if p.Sampling.Temperature < 0 || p.Sampling.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	if p.Sampling.TopP <= 0 || p.Sampling.TopP > 1 {
		return fmt.Errorf("top_p must be in (0, 1]")
	}

	for i, category := range p.Categories {
		if category == "" {
			return fmt.Errorf("empty category at index %d", i)
		}
	}
	for i, tag := range p.Tags {
		if tag == "" {
			return fmt.Errorf("empty tag at index %d", i)
		}
	}

	switch mode {
	case cfg.ModeRanked:
		if p.Candidates <= 0 {
			return fmt.Errorf("candidates must be positive")
		}
	case cfg.ModeRandom:
		if p.FileSuffix == "" {
			return fmt.Errorf("file_suffix is required in random mode")
		}
		if !fileSuffixRegex.MatchString(p.FileSuffix) {
			return fmt.Errorf("file_suffix %q may only contain lowercase letters, digits and hyphens", p.FileSuffix)
		}
	}

	return nil
}
