package playlist

import (
	"reflect"
	"testing"

	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/profile"
)

// event is a history entry shorthand for tests.
func event(mood catalog.Mood) profile.HistoryEvent {
	return profile.HistoryEvent{Mood: mood, Artist: "x", Activity: catalog.ActivityStudy}
}

func TestFavoriteMood(t *testing.T) {
	tests := []struct {
		name    string
		history []profile.HistoryEvent
		want    catalog.Mood
		wantOK  bool
	}{
		{
			name:    "empty history",
			history: nil,
			wantOK:  false,
		},
		{
			name:    "single event",
			history: []profile.HistoryEvent{event(catalog.MoodCalm)},
			want:    catalog.MoodCalm,
			wantOK:  true,
		},
		{
			name: "majority wins",
			history: []profile.HistoryEvent{
				event(catalog.MoodHappy),
				event(catalog.MoodSad),
				event(catalog.MoodSad),
			},
			want:   catalog.MoodSad,
			wantOK: true,
		},
		{
			name: "tie breaks to first seen",
			history: []profile.HistoryEvent{
				event(catalog.MoodCalm),
				event(catalog.MoodHappy),
			},
			want:   catalog.MoodCalm,
			wantOK: true,
		},
		{
			name: "later mood cannot steal a tie",
			history: []profile.HistoryEvent{
				event(catalog.MoodSad),
				event(catalog.MoodHappy),
				event(catalog.MoodHappy),
				event(catalog.MoodSad),
			},
			want:   catalog.MoodSad,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FavoriteMood(tt.history)
			if ok != tt.wantOK {
				t.Fatalf("FavoriteMood() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FavoriteMood() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildEmptyHistory(t *testing.T) {
	b := New(catalog.Default())

	got := b.Build(nil)
	if len(got) != 0 {
		t.Errorf("expected empty playlist for empty history, got %d songs", len(got))
	}
}

func TestBuildCatalogOrder(t *testing.T) {
	b := New(catalog.Default())
	history := []profile.HistoryEvent{
		event(catalog.MoodHappy),
		event(catalog.MoodHappy),
		event(catalog.MoodSad),
	}

	got := b.Build(history)
	wantNames := []string{"Happy", "Don't Stop Me Now"}

	if len(got) != len(wantNames) {
		t.Fatalf("Build() returned %d songs, want %d", len(got), len(wantNames))
	}
	for i, want := range wantNames {
		if got[i].Name != want {
			t.Errorf("Build()[%d] = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestBuildLimit(t *testing.T) {
	// A catalog with more calm songs than the limit.
	var c catalog.Catalog
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		c = append(c, catalog.Song{Name: n, Artist: n, Mood: catalog.MoodCalm, Activity: catalog.ActivityStudy})
	}

	b := New(c, WithLimit(3))
	got := b.Build([]profile.HistoryEvent{event(catalog.MoodCalm)})

	if len(got) != 3 {
		t.Fatalf("Build() returned %d songs, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Name != want {
			t.Errorf("Build()[%d] = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	b := New(catalog.Default())
	history := []profile.HistoryEvent{
		event(catalog.MoodEnergetic),
		event(catalog.MoodEnergetic),
		event(catalog.MoodCalm),
	}

	first := b.Build(history)
	second := b.Build(history)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Build() is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}
