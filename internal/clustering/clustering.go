// Package clustering groups users by listening behavior using k-means.
package clustering

import (
	"math/rand"
	"time"

	"github.com/kush9094/music-recommender-web/internal/profile"

	"github.com/muesli/clusters"
)

// DefaultMaxClusters is the number of clusters requested when enough users
// exist.
const DefaultMaxClusters = 2

// maxIterations caps the k-means refinement loop.
const maxIterations = 96

// Assignment pairs a username with the cluster it landed in. Cluster indexes
// are meaningful only within a single Assign result.
type Assignment struct {
	Username string `json:"username"`
	Cluster  int    `json:"cluster"`
}

// Clusterer groups users by the mood and activity counts of their listening
// histories.
//
// Center seeding draws only from the configured random source, so a seeded
// source makes cluster assignments reproducible.
type Clusterer struct {
	maxClusters int
	rng         *rand.Rand
}

// Option configures a Clusterer.
type Option func(*Clusterer)

// WithRand sets the random source used to seed cluster centers.
func WithRand(rng *rand.Rand) Option {
	return func(c *Clusterer) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithMaxClusters sets how many clusters are requested when at least that
// many users exist.
func WithMaxClusters(k int) Option {
	return func(c *Clusterer) {
		if k > 0 {
			c.maxClusters = k
		}
	}
}

// New creates a Clusterer.
func New(opts ...Option) *Clusterer {
	c := &Clusterer{
		maxClusters: DefaultMaxClusters,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assign clusters every user in profiles by behavior and returns the
// assignments sorted by username. Fewer than two users yield no assignments:
// there is nothing to contrast a single user against. Profiles are never
// mutated and assignments are not persisted.
func (c *Clusterer) Assign(profiles profile.Map) []Assignment {
	if len(profiles) < 2 {
		return nil
	}

	usernames := profiles.Usernames()
	obs := make(clusters.Observations, len(usernames))
	for i, name := range usernames {
		obs[i] = userObservation{
			username: name,
			coords:   behaviorVector(profiles[name].History),
		}
	}

	k := min(c.maxClusters, len(usernames))
	labels := c.partition(obs, k)

	out := make([]Assignment, len(usernames))
	for i, name := range usernames {
		out[i] = Assignment{Username: name, Cluster: labels[i]}
	}
	return out
}
