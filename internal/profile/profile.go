// Package profile defines user profiles and the stores that persist them.
//
// A profile records a user's listening history, their last derived playlist
// and a like counter. All profiles are persisted together as one document
// keyed by username; see Store.
package profile

import (
	"fmt"
	"sort"

	"github.com/kush9094/music-recommender-web/internal/catalog"
)

// HistoryEvent is one recorded listen: the mood and activity the user asked
// for and the artist that was served.
type HistoryEvent struct {
	Mood     catalog.Mood     `json:"mood"`
	Artist   string           `json:"artist"`
	Activity catalog.Activity `json:"activity"`
}

// Profile is the per-user record.
//
// FavoriteMood and FavoriteActivity are legacy fields kept for file-format
// compatibility: they are always serialized and never computed or read.
type Profile struct {
	FavoriteMood     string         `json:"favorite_mood"`
	FavoriteActivity string         `json:"favorite_activity"`
	History          []HistoryEvent `json:"listening_history"`
	Playlist         []catalog.Song `json:"playlists"`
	Likes            int            `json:"likes"`
}

// New returns an empty profile. History and Playlist are non-nil so the
// serialized form is [] rather than null.
func New() *Profile {
	return &Profile{
		History:  []HistoryEvent{},
		Playlist: []catalog.Song{},
	}
}

// Record appends one history event per song, preserving song order. History
// is append-only; nothing is ever rewritten or truncated.
func (p *Profile) Record(songs []catalog.Song) {
	for _, s := range songs {
		p.History = append(p.History, HistoryEvent{
			Mood:     s.Mood,
			Artist:   s.Artist,
			Activity: s.Activity,
		})
	}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	out := &Profile{
		FavoriteMood:     p.FavoriteMood,
		FavoriteActivity: p.FavoriteActivity,
		History:          make([]HistoryEvent, len(p.History)),
		Playlist:         make([]catalog.Song, len(p.Playlist)),
		Likes:            p.Likes,
	}
	copy(out.History, p.History)
	copy(out.Playlist, p.Playlist)
	return out
}

// Validate checks the closed mood and activity vocabularies and the like
// counter. Stores call it on load so corrupt data is rejected instead of
// propagated.
func (p *Profile) Validate() error {
	for i, e := range p.History {
		if !e.Mood.Valid() {
			return fmt.Errorf("history event %d: unknown mood %q", i, e.Mood)
		}
		if !e.Activity.Valid() {
			return fmt.Errorf("history event %d: unknown activity %q", i, e.Activity)
		}
	}
	for i, s := range p.Playlist {
		if !s.Mood.Valid() {
			return fmt.Errorf("playlist entry %d: unknown mood %q", i, s.Mood)
		}
		if !s.Activity.Valid() {
			return fmt.Errorf("playlist entry %d: unknown activity %q", i, s.Activity)
		}
	}
	if p.Likes < 0 {
		return fmt.Errorf("negative like count %d", p.Likes)
	}
	return nil
}

// normalize replaces nil collections with empty ones so profiles loaded from
// hand-edited sources round-trip identically to ones this code wrote.
func (p *Profile) normalize() {
	if p.History == nil {
		p.History = []HistoryEvent{}
	}
	if p.Playlist == nil {
		p.Playlist = []catalog.Song{}
	}
}

// Map holds every stored profile, keyed by username.
type Map map[string]*Profile

// Clone returns a deep copy of the whole mapping.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for name, p := range m {
		out[name] = p.Clone()
	}
	return out
}

// Usernames returns all usernames in sorted order.
func (m Map) Usernames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every profile in the mapping.
func (m Map) Validate() error {
	for _, name := range m.Usernames() {
		if name == "" {
			return fmt.Errorf("profile with empty username")
		}
		p := m[name]
		if p == nil {
			return fmt.Errorf("user %q: missing profile body", name)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("user %q: %w", name, err)
		}
	}
	return nil
}
