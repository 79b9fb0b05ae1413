package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// usersCmd lists the registered users and the size of their records.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	Run: func(cmd *cobra.Command, args []string) {
		if err := listUsers(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}

func listUsers(cmd *cobra.Command) error {
	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	names := svc.Usernames()
	if len(names) == 0 {
		fmt.Println("No users registered yet.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"User", "History", "Playlist", "Likes"})
	for _, name := range names {
		p, err := svc.Profile(name)
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			strconv.Itoa(len(p.History)),
			strconv.Itoa(len(p.Playlist)),
			strconv.Itoa(p.Likes),
		})
	}
	table.Render()
	return nil
}
