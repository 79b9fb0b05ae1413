package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kush9094/music-recommender-web/internal/catalog"
)

// recommendCmd samples songs for a mood and activity and records them in
// the acting user's listening history.
var recommendCmd = &cobra.Command{
	Use:   "recommend <mood> <activity>",
	Short: "Recommend songs for a mood and activity",
	Long: fmt.Sprintf(`Picks up to five matching songs at random and adds them to the user's
listening history.

Moods: %v
Activities: %v`, catalog.Moods(), catalog.Activities()),
	Args:    cobra.ExactArgs(2),
	PreRunE: requireUser,
	Run: func(cmd *cobra.Command, args []string) {
		if err := recommendSongs(cmd, args[0], args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}

func recommendSongs(cmd *cobra.Command, moodArg, activityArg string) error {
	mood, err := catalog.ParseMood(moodArg)
	if err != nil {
		return err
	}
	activity, err := catalog.ParseActivity(activityArg)
	if err != nil {
		return err
	}

	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	songs, err := svc.Recommend(cmd.Context(), viper.GetString("user"), mood, activity)
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		fmt.Println("No songs match that mood and activity yet.")
		return nil
	}

	renderSongs(os.Stdout, songs)
	return nil
}
