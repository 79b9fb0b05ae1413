// Package recommend picks songs from the catalog for a requested mood and
// activity.
package recommend

import (
	"math/rand"
	"time"

	"github.com/kush9094/music-recommender-web/internal/catalog"
)

// DefaultLimit is the most songs a single recommendation returns.
const DefaultLimit = 5

// Recommender samples matching songs from a catalog.
//
// Sampling draws only from the configured random source, so a seeded source
// makes recommendations reproducible. A Recommender is not safe for
// concurrent use; the application service serializes access.
type Recommender struct {
	catalog catalog.Catalog
	rng     *rand.Rand
	limit   int
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithRand sets the random source used for sampling.
func WithRand(rng *rand.Rand) Option {
	return func(r *Recommender) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// WithLimit sets the maximum number of songs returned per recommendation.
func WithLimit(n int) Option {
	return func(r *Recommender) {
		if n > 0 {
			r.limit = n
		}
	}
}

// New creates a Recommender over c.
func New(c catalog.Catalog, opts ...Option) *Recommender {
	r := &Recommender{
		catalog: c,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		limit:   DefaultLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend returns up to the configured limit of songs matching both mood
// and activity, sampled uniformly without replacement. No matching songs
// yield an empty result, not an error.
func (r *Recommender) Recommend(mood catalog.Mood, activity catalog.Activity) []catalog.Song {
	matches := r.catalog.Filter(mood, activity)
	if len(matches) == 0 {
		return nil
	}

	// Filter returned a fresh slice, so shuffling in place is safe.
	r.rng.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})

	n := min(r.limit, len(matches))
	return matches[:n]
}
