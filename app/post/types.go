package post

import (
	"errors"
	"time"
)

var ErrUnparsable = errors.New("could not parse response")

// GeneratedPost is the article ready to be rendered and published.
type GeneratedPost struct {
	Title   string
	Content string
	Date    time.Time
}
