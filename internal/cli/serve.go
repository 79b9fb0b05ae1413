package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kush9094/music-recommender-web/internal/web"
)

var serveAddr string

// serveCmd starts the HTTP JSON API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", web.DefaultAddr, "listen address")
}

func serve(cmd *cobra.Command) error {
	svc, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	server := web.NewServer(web.ServerConfig{Addr: serveAddr}, svc)
	return server.Run()
}
