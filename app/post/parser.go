package post

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	titleRegex   = regexp.MustCompile(`TITLE:\s*(.+)`)
	contentRegex = regexp.MustCompile(`(?s)CONTENT:\s*(.+)`)
)

// ParseResponse extracts the title and article body from a structured model response.
func ParseResponse(raw string) (GeneratedPost, error) {
	titleMatch := titleRegex.FindStringSubmatch(raw)
	if titleMatch == nil {
		return GeneratedPost{}, fmt.Errorf("%w: missing TITLE marker", ErrUnparsable)
	}

	contentMatch := contentRegex.FindStringSubmatch(raw)
	if contentMatch == nil {
		return GeneratedPost{}, fmt.Errorf("%w: missing CONTENT marker", ErrUnparsable)
	}

	return GeneratedPost{
		Title:   strings.TrimSpace(titleMatch[1]),
		Content: strings.TrimSpace(contentMatch[1]),
	}, nil
}
