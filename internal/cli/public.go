package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// publicCmd lists the other users' stored playlists.
var publicCmd = &cobra.Command{
	Use:     "public",
	Short:   "Browse other users' playlists",
	PreRunE: requireUser,
	Run: func(cmd *cobra.Command, args []string) {
		if err := showPublicPlaylists(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(publicCmd)
}

func showPublicPlaylists(cmd *cobra.Command) error {
	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	shared := svc.PublicPlaylists(viper.GetString("user"))
	if len(shared) == 0 {
		fmt.Println("No other playlists to show yet.")
		return nil
	}

	for _, p := range shared {
		fmt.Printf("%s's playlist (%d likes)\n", p.Username, p.Likes)
		renderSongs(os.Stdout, p.Songs)
	}
	return nil
}
