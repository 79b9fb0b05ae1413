package clustering

import (
	"github.com/muesli/clusters"
)

// userObservation wraps a user's behavior vector to implement the
// clusters.Observation interface.
type userObservation struct {
	username string
	coords   clusters.Coordinates
}

func (o userObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o userObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// partition runs Lloyd's algorithm over obs and returns one cluster index
// per observation, in input order.
//
// Centers are seeded from k distinct observations drawn from the Clusterer's
// random source; kmeans.Partition reseeds the global math/rand from the wall
// clock and cannot honor an injected source. A cluster left empty after an
// assignment pass is reseeded onto a random observation. The loop stops when
// assignments are stable or after maxIterations rounds.
func (c *Clusterer) partition(obs clusters.Observations, k int) []int {
	cc := make(clusters.Clusters, 0, k)
	for _, idx := range c.rng.Perm(len(obs))[:k] {
		cc = append(cc, clusters.Cluster{Center: copyCoordinates(obs[idx].Coordinates())})
	}

	labels := make([]int, len(obs))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIterations; iter++ {
		changes := 0
		cc.Reset()

		for i, o := range obs {
			nearest := cc.Nearest(o)
			cc[nearest].Append(o)
			if labels[i] != nearest {
				labels[i] = nearest
				changes++
			}
		}

		for i := range cc {
			if len(cc[i].Observations) == 0 {
				o := obs[c.rng.Intn(len(obs))]
				cc[i] = clusters.Cluster{Center: copyCoordinates(o.Coordinates())}
				changes++
			}
		}

		if changes == 0 {
			break
		}
		cc.Recenter()
	}

	return labels
}

// copyCoordinates clones a coordinate vector so cluster centers never alias
// observation data.
func copyCoordinates(c clusters.Coordinates) clusters.Coordinates {
	out := make(clusters.Coordinates, len(c))
	copy(out, c)
	return out
}
