// Package playlist derives a user's personalized playlist from their
// listening history.
package playlist

import (
	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/profile"
)

// DefaultLimit is the most songs a derived playlist holds.
const DefaultLimit = 10

// FavoriteMood returns the most frequent mood in history. Ties break to the
// mood that appeared first in history order; ok is false when history is
// empty.
func FavoriteMood(history []profile.HistoryEvent) (catalog.Mood, bool) {
	if len(history) == 0 {
		return "", false
	}

	counts := make(map[catalog.Mood]int)
	var order []catalog.Mood
	for _, e := range history {
		if counts[e.Mood] == 0 {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}

	favorite := order[0]
	for _, m := range order[1:] {
		if counts[m] > counts[favorite] {
			favorite = m
		}
	}
	return favorite, true
}

// Builder derives playlists from a catalog.
type Builder struct {
	catalog catalog.Catalog
	limit   int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLimit sets the maximum playlist length.
func WithLimit(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.limit = n
		}
	}
}

// New creates a Builder over c.
func New(c catalog.Catalog, opts ...Option) *Builder {
	b := &Builder{
		catalog: c,
		limit:   DefaultLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the first songs in catalog order whose mood matches the
// favorite mood of history, up to the configured limit. The derivation is
// pure: the same history always yields the same playlist, and an empty
// history yields an empty one.
func (b *Builder) Build(history []profile.HistoryEvent) []catalog.Song {
	mood, ok := FavoriteMood(history)
	if !ok {
		return nil
	}
	return b.ForMood(mood)
}

// ForMood returns the first songs in catalog order with the given mood, up
// to the configured limit.
func (b *Builder) ForMood(mood catalog.Mood) []catalog.Song {
	songs := b.catalog.ByMood(mood)
	if len(songs) > b.limit {
		songs = songs[:b.limit]
	}
	return songs
}
