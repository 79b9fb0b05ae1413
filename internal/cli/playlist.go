package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// playlistCmd derives and stores the acting user's favorite-mood playlist.
var playlistCmd = &cobra.Command{
	Use:     "playlist",
	Short:   "Build a playlist from the user's favorite mood",
	PreRunE: requireUser,
	Run: func(cmd *cobra.Command, args []string) {
		if err := buildPlaylist(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playlistCmd)
}

func buildPlaylist(cmd *cobra.Command) error {
	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	mood, songs, err := svc.BuildPlaylist(cmd.Context(), viper.GetString("user"))
	if err != nil {
		return err
	}
	if mood == "" {
		fmt.Println("No listening history yet. Ask for some recommendations first.")
		return nil
	}

	fmt.Printf("Your mood playlist (based on your most frequent mood: %s):\n", mood)
	renderSongs(os.Stdout, songs)
	return nil
}
