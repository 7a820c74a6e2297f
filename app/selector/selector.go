package selector

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/lysyi3m/trend-scribe/app/source"
)

// ErrNoTopics means no source produced a usable topic; the run has nothing to do.
var ErrNoTopics = errors.New("no trending topics found")

// RankByEngagement returns a copy of stories ordered by score plus comments, highest first.
// Stories with equal engagement keep their input order.
func RankByEngagement(stories []source.Story) []source.Story {
	ranked := slices.Clone(stories)
	slices.SortStableFunc(ranked, func(a, b source.Story) int {
		return b.Engagement() - a.Engagement()
	})
	return ranked
}

// TopCandidates returns the n most engaging stories.
func TopCandidates(stories []source.Story, n int) ([]source.Story, error) {
	if len(stories) == 0 {
		return nil, ErrNoTopics
	}

	ranked := RankByEngagement(stories)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// PickRandom returns one story chosen uniformly from the pool.
func PickRandom(stories []source.Story, rng *rand.Rand) (source.Story, error) {
	if len(stories) == 0 {
		return source.Story{}, ErrNoTopics
	}

	if rng == nil {
		return stories[rand.IntN(len(stories))], nil
	}
	return stories[rng.IntN(len(stories))], nil
}
