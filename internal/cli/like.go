package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// likeCmd likes another user's playlist.
var likeCmd = &cobra.Command{
	Use:     "like <username>",
	Short:   "Like another user's playlist",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireUser,
	Run: func(cmd *cobra.Command, args []string) {
		if err := likePlaylist(cmd, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(likeCmd)
}

func likePlaylist(cmd *cobra.Command, owner string) error {
	if owner == viper.GetString("user") {
		return errors.New("cannot like your own playlist")
	}

	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Like(cmd.Context(), owner); err != nil {
		return err
	}
	fmt.Printf("Liked %s's playlist\n", owner)
	return nil
}
