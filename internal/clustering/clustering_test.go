package clustering

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/profile"
)

// repeat builds n identical history events.
func repeat(n int, mood catalog.Mood, activity catalog.Activity) []profile.HistoryEvent {
	events := make([]profile.HistoryEvent, n)
	for i := range events {
		events[i] = profile.HistoryEvent{Mood: mood, Artist: "x", Activity: activity}
	}
	return events
}

// withHistory builds a profile holding the given events.
func withHistory(events ...[]profile.HistoryEvent) *profile.Profile {
	p := profile.New()
	for _, batch := range events {
		p.History = append(p.History, batch...)
	}
	return p
}

// seeded builds a Clusterer with a fixed random source.
func seeded(seed int64) *Clusterer {
	return New(WithRand(rand.New(rand.NewSource(seed))))
}

// byUser indexes assignments by username.
func byUser(t *testing.T, assignments []Assignment) map[string]int {
	t.Helper()
	out := make(map[string]int, len(assignments))
	for _, a := range assignments {
		out[a.Username] = a.Cluster
	}
	return out
}

func TestAssignFewerThanTwoUsers(t *testing.T) {
	c := seeded(1)

	if got := c.Assign(profile.Map{}); got != nil {
		t.Errorf("expected nil for empty map, got %+v", got)
	}

	single := profile.Map{"alice": withHistory(repeat(3, catalog.MoodHappy, catalog.ActivityParty))}
	if got := c.Assign(single); got != nil {
		t.Errorf("expected nil for a single user, got %+v", got)
	}
}

func TestAssignTwoDistinctUsers(t *testing.T) {
	profiles := profile.Map{
		"alice": withHistory(repeat(5, catalog.MoodMotivational, catalog.ActivityGym)),
		"bob":   withHistory(repeat(5, catalog.MoodCalm, catalog.ActivityStudy)),
	}

	got := byUser(t, seeded(1).Assign(profiles))
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	if got["alice"] == got["bob"] {
		t.Errorf("distinct behaviors should split: alice=%d bob=%d", got["alice"], got["bob"])
	}
}

func TestAssignIdenticalHistories(t *testing.T) {
	profiles := profile.Map{
		"alice": withHistory(repeat(4, catalog.MoodHappy, catalog.ActivityParty)),
		"bob":   withHistory(repeat(4, catalog.MoodHappy, catalog.ActivityParty)),
	}

	got := byUser(t, seeded(9).Assign(profiles))
	if got["alice"] != got["bob"] {
		t.Errorf("identical behaviors should share a cluster: alice=%d bob=%d", got["alice"], got["bob"])
	}
}

func TestAssignGroupsSimilarUsers(t *testing.T) {
	profiles := profile.Map{
		"gym-a": withHistory(repeat(12, catalog.MoodMotivational, catalog.ActivityGym)),
		"gym-b": withHistory(
			repeat(11, catalog.MoodMotivational, catalog.ActivityGym),
			repeat(1, catalog.MoodHappy, catalog.ActivityParty),
		),
		"study-a": withHistory(repeat(12, catalog.MoodCalm, catalog.ActivityStudy)),
		"study-b": withHistory(
			repeat(11, catalog.MoodCalm, catalog.ActivityStudy),
			repeat(1, catalog.MoodSad, catalog.ActivityStudy),
		),
	}

	got := byUser(t, seeded(3).Assign(profiles))

	if got["gym-a"] != got["gym-b"] {
		t.Errorf("gym users should share a cluster: %d vs %d", got["gym-a"], got["gym-b"])
	}
	if got["study-a"] != got["study-b"] {
		t.Errorf("study users should share a cluster: %d vs %d", got["study-a"], got["study-b"])
	}
	if got["gym-a"] == got["study-a"] {
		t.Errorf("gym and study groups should split: %d vs %d", got["gym-a"], got["study-a"])
	}
}

func TestAssignSortedByUsername(t *testing.T) {
	profiles := profile.Map{
		"carol": withHistory(repeat(2, catalog.MoodSad, catalog.ActivityStudy)),
		"alice": withHistory(repeat(2, catalog.MoodHappy, catalog.ActivityParty)),
		"bob":   withHistory(repeat(2, catalog.MoodCalm, catalog.ActivityStudy)),
	}

	got := seeded(5).Assign(profiles)

	names := make([]string, len(got))
	for i, a := range got {
		names[i] = a.Username
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("assignments not sorted by username: %v", names)
	}
}

func TestAssignDeterministicWithSeed(t *testing.T) {
	profiles := profile.Map{
		"alice": withHistory(repeat(6, catalog.MoodEnergetic, catalog.ActivityParty)),
		"bob":   withHistory(repeat(6, catalog.MoodCalm, catalog.ActivityStudy)),
		"carol": withHistory(repeat(3, catalog.MoodEnergetic, catalog.ActivityParty), repeat(1, catalog.MoodHappy, catalog.ActivityParty)),
	}

	first := seeded(42).Assign(profiles)
	second := seeded(42).Assign(profiles)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("seeded runs differ:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAssignLabelRange(t *testing.T) {
	profiles := profile.Map{
		"alice": withHistory(repeat(8, catalog.MoodMotivational, catalog.ActivityGym)),
		"bob":   withHistory(repeat(8, catalog.MoodCalm, catalog.ActivityStudy)),
		"carol": withHistory(repeat(7, catalog.MoodMotivational, catalog.ActivityGym), repeat(1, catalog.MoodHappy, catalog.ActivityParty)),
		"dave":  withHistory(repeat(8, catalog.MoodHappy, catalog.ActivityParty)),
		"erin":  withHistory(repeat(7, catalog.MoodCalm, catalog.ActivityStudy), repeat(1, catalog.MoodSad, catalog.ActivityStudy)),
	}

	// Default clusterer, so five users land in two clusters labeled 0 and 1.
	got := seeded(11).Assign(profiles)

	if len(got) != len(profiles) {
		t.Fatalf("expected one assignment per user, got %d for %d users", len(got), len(profiles))
	}
	for _, a := range got {
		if a.Cluster < 0 || a.Cluster > 1 {
			t.Errorf("label for %q out of range: %d, want 0 or 1", a.Username, a.Cluster)
		}
	}
}

func TestAssignMaxClusters(t *testing.T) {
	profiles := profile.Map{
		"alice": withHistory(repeat(10, catalog.MoodHappy, catalog.ActivityParty)),
		"bob":   withHistory(repeat(10, catalog.MoodCalm, catalog.ActivityStudy)),
		"carol": withHistory(repeat(10, catalog.MoodMotivational, catalog.ActivityGym)),
	}

	c := New(WithRand(rand.New(rand.NewSource(2))), WithMaxClusters(3))
	got := byUser(t, c.Assign(profiles))

	distinct := map[int]bool{}
	for _, cluster := range got {
		distinct[cluster] = true
	}
	if len(distinct) != 3 {
		t.Errorf("expected 3 distinct clusters for 3 separated users, got %v", got)
	}
}

func TestAssignDoesNotMutateProfiles(t *testing.T) {
	alice := withHistory(repeat(4, catalog.MoodHappy, catalog.ActivityParty))
	bob := withHistory(repeat(4, catalog.MoodSad, catalog.ActivityStudy))
	profiles := profile.Map{"alice": alice, "bob": bob}
	want := profiles.Clone()

	seeded(7).Assign(profiles)

	if !reflect.DeepEqual(profiles, want) {
		t.Error("Assign mutated the profiles")
	}
}
