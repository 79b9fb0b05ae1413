package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// registerCmd creates a new user profile.
var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a new user profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := registerUser(cmd, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func registerUser(cmd *cobra.Command, username string) error {
	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Register(cmd.Context(), username); err != nil {
		return err
	}
	fmt.Printf("Registered %s\n", username)
	return nil
}
