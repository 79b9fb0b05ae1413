// Package catalog defines the song catalog and the mood and activity
// vocabularies used throughout the recommender.
package catalog

import "fmt"

// Mood classifies the feel of a song. The set is closed; values outside it
// are rejected at the edges (input parsing and store loads).
type Mood string

// Known moods, in canonical order.
const (
	MoodHappy        Mood = "happy"
	MoodSad          Mood = "sad"
	MoodEnergetic    Mood = "energetic"
	MoodCalm         Mood = "calm"
	MoodMotivational Mood = "motivational"
)

// Activity classifies what the listener is doing. The set is closed.
type Activity string

// Known activities, in canonical order.
const (
	ActivityGym   Activity = "gym"
	ActivityStudy Activity = "study"
	ActivityParty Activity = "party"
)

// moodOrder and activityOrder fix the ordering used for display and for
// clustering feature vectors.
var (
	moodOrder     = []Mood{MoodHappy, MoodSad, MoodEnergetic, MoodCalm, MoodMotivational}
	activityOrder = []Activity{ActivityGym, ActivityStudy, ActivityParty}
)

// Moods returns the known moods in canonical order. The slice is a copy.
func Moods() []Mood {
	out := make([]Mood, len(moodOrder))
	copy(out, moodOrder)
	return out
}

// Activities returns the known activities in canonical order. The slice is a copy.
func Activities() []Activity {
	out := make([]Activity, len(activityOrder))
	copy(out, activityOrder)
	return out
}

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodEnergetic, MoodCalm, MoodMotivational:
		return true
	}
	return false
}

// Valid reports whether a is a known activity.
func (a Activity) Valid() bool {
	switch a {
	case ActivityGym, ActivityStudy, ActivityParty:
		return true
	}
	return false
}

// ParseMood validates a raw mood string. Matching is exact and case-sensitive.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q (want one of %v)", s, moodOrder)
	}
	return m, nil
}

// ParseActivity validates a raw activity string. Matching is exact and case-sensitive.
func ParseActivity(s string) (Activity, error) {
	a := Activity(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown activity %q (want one of %v)", s, activityOrder)
	}
	return a, nil
}

// Song is a single catalog entry. The JSON field names match the on-disk
// profile format.
type Song struct {
	Name     string   `json:"song_name"`
	Artist   string   `json:"artist"`
	Genre    string   `json:"genre"`
	Mood     Mood     `json:"mood"`
	Activity Activity `json:"activity"`
}

// Catalog is an ordered list of songs. Order is meaningful: filters preserve
// it and playlist building truncates it.
type Catalog []Song

var defaultSongs = Catalog{
	{Name: "Stronger", Artist: "Kanye West", Genre: "Hip Hop", Mood: MoodMotivational, Activity: ActivityGym},
	{Name: "Blinding Lights", Artist: "The Weeknd", Genre: "Pop", Mood: MoodEnergetic, Activity: ActivityParty},
	{Name: "Someone Like You", Artist: "Adele", Genre: "Soul", Mood: MoodSad, Activity: ActivityStudy},
	{Name: "Happy", Artist: "Pharrell Williams", Genre: "Pop", Mood: MoodHappy, Activity: ActivityParty},
	{Name: "Lose Yourself", Artist: "Eminem", Genre: "Hip Hop", Mood: MoodMotivational, Activity: ActivityGym},
	{Name: "Weightless", Artist: "Marconi Union", Genre: "Ambient", Mood: MoodCalm, Activity: ActivityStudy},
	{Name: "Viva La Vida", Artist: "Coldplay", Genre: "Alternative", Mood: MoodEnergetic, Activity: ActivityParty},
	{Name: "Lovely", Artist: "Billie Eilish", Genre: "Pop", Mood: MoodSad, Activity: ActivityStudy},
	{Name: "Don't Stop Me Now", Artist: "Queen", Genre: "Rock", Mood: MoodHappy, Activity: ActivityParty},
	{Name: "Circles", Artist: "Post Malone", Genre: "Pop", Mood: MoodCalm, Activity: ActivityStudy},
}

// Default returns the built-in ten-song catalog. The returned slice is a
// copy; callers may reorder or truncate it freely.
func Default() Catalog {
	out := make(Catalog, len(defaultSongs))
	copy(out, defaultSongs)
	return out
}

// Filter returns the songs matching both mood and activity, preserving
// catalog order.
func (c Catalog) Filter(mood Mood, activity Activity) Catalog {
	var out Catalog
	for _, s := range c {
		if s.Mood == mood && s.Activity == activity {
			out = append(out, s)
		}
	}
	return out
}

// ByMood returns the songs matching mood, preserving catalog order.
func (c Catalog) ByMood(mood Mood) Catalog {
	var out Catalog
	for _, s := range c {
		if s.Mood == mood {
			out = append(out, s)
		}
	}
	return out
}
