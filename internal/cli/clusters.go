package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// clustersCmd groups users by listening behavior.
var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Group users by listening behavior",
	Run: func(cmd *cobra.Command, args []string) {
		if err := showClusters(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(clustersCmd)
}

func showClusters(cmd *cobra.Command) error {
	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	assignments := svc.ClusterUsers()
	if len(assignments) == 0 {
		fmt.Println("Need at least two users to cluster.")
		return nil
	}

	renderClusters(os.Stdout, assignments)
	return nil
}
