package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/clustering"
)

// renderSongs writes songs as a table.
func renderSongs(w io.Writer, songs []catalog.Song) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Song", "Artist", "Genre", "Mood", "Activity"})
	for _, s := range songs {
		table.Append([]string{s.Name, s.Artist, s.Genre, string(s.Mood), string(s.Activity)})
	}
	table.Render()
}

// renderClusters writes cluster assignments as a table.
func renderClusters(w io.Writer, assignments []clustering.Assignment) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"User", "Cluster"})
	for _, a := range assignments {
		table.Append([]string{a.Username, strconv.Itoa(a.Cluster)})
	}
	table.Render()
}
