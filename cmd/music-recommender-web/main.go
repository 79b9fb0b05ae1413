// Command music-recommender-web recommends songs by mood and activity,
// tracks listening habits and groups users with similar taste. It serves an
// HTTP JSON API and a set of maintenance subcommands.
package main

import "github.com/kush9094/music-recommender-web/internal/cli"

func main() {
	cli.Execute()
}
