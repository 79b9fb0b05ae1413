package clustering

import (
	"testing"

	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/profile"
)

func TestBehaviorVector(t *testing.T) {
	tests := []struct {
		name    string
		history []profile.HistoryEvent
		want    []float64
	}{
		{
			name:    "empty history",
			history: nil,
			want:    []float64{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "counts by mood then activity",
			history: []profile.HistoryEvent{
				{Mood: catalog.MoodHappy, Artist: "Queen", Activity: catalog.ActivityParty},
				{Mood: catalog.MoodHappy, Artist: "Pharrell Williams", Activity: catalog.ActivityParty},
				{Mood: catalog.MoodSad, Artist: "Adele", Activity: catalog.ActivityStudy},
				{Mood: catalog.MoodMotivational, Artist: "Eminem", Activity: catalog.ActivityGym},
			},
			// Order: happy, sad, energetic, calm, motivational, gym, study, party.
			want: []float64{2, 1, 0, 0, 1, 1, 1, 2},
		},
		{
			name: "single dimension",
			history: []profile.HistoryEvent{
				{Mood: catalog.MoodCalm, Artist: "Marconi Union", Activity: catalog.ActivityStudy},
				{Mood: catalog.MoodCalm, Artist: "Post Malone", Activity: catalog.ActivityStudy},
				{Mood: catalog.MoodCalm, Artist: "Marconi Union", Activity: catalog.ActivityStudy},
			},
			want: []float64{0, 0, 0, 3, 0, 0, 3, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := behaviorVector(tt.history)
			if len(got) != len(tt.want) {
				t.Fatalf("behaviorVector() has %d dimensions, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("behaviorVector()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
