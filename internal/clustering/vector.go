package clustering

import (
	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/profile"

	"github.com/muesli/clusters"
)

// behaviorVector counts how often each mood and each activity appears in a
// listening history. Dimensions follow the canonical catalog orders: the
// five moods, then the three activities.
func behaviorVector(history []profile.HistoryEvent) clusters.Coordinates {
	moods := catalog.Moods()
	activities := catalog.Activities()

	moodCounts := make(map[catalog.Mood]int, len(moods))
	activityCounts := make(map[catalog.Activity]int, len(activities))
	for _, e := range history {
		moodCounts[e.Mood]++
		activityCounts[e.Activity]++
	}

	coords := make(clusters.Coordinates, 0, len(moods)+len(activities))
	for _, m := range moods {
		coords = append(coords, float64(moodCounts[m]))
	}
	for _, a := range activities {
		coords = append(coords, float64(activityCounts[a]))
	}
	return coords
}
