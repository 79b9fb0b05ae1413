// Package cli implements the music-recommender-web command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kush9094/music-recommender-web/internal/app"
	"github.com/kush9094/music-recommender-web/internal/profile"
)

var (
	cfgFile     string
	storePath   string
	storeDriver string
	databaseURL string
	randomSeed  int64
	username    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "music-recommender-web",
	Short: "Mood and activity based song recommendations",
	Long: `Recommends songs by mood and activity, tracks listening habits per
user, derives favorite-mood playlists and groups users with similar taste.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.music-recommender-web.yaml)")

	rootCmd.PersistentFlags().StringVar(
		&storePath, "store", profile.DefaultFileName, "path to the profile store (file and sqlite drivers)")
	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))

	rootCmd.PersistentFlags().StringVar(
		&storeDriver, "driver", "file", "profile store driver: file, memory, sqlite or postgres")
	viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver"))

	rootCmd.PersistentFlags().StringVar(
		&databaseURL, "database-url", "", "PostgreSQL connection string (postgres driver)")
	viper.BindPFlag("database-url", rootCmd.PersistentFlags().Lookup("database-url"))

	rootCmd.PersistentFlags().Int64Var(
		&randomSeed, "seed", 0, "random seed for reproducible output (0 seeds from the clock)")
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))

	rootCmd.PersistentFlags().StringVarP(
		&username, "user", "u", "", "username to act as")
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".music-recommender-web"
		// (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".music-recommender-web")
	}

	viper.SetEnvPrefix("recommender")
	// Hyphenated flag names need the underscore form in env vars, e.g.
	// RECOMMENDER_DATABASE_URL for --database-url.
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// requireUser is a PreRunE for commands that act on behalf of a user.
func requireUser(*cobra.Command, []string) error {
	if viper.GetString("user") == "" {
		return errors.New(`required flag(s) "user" not set`)
	}
	return nil
}

// openStore builds the profile store selected by the driver flag.
func openStore(ctx context.Context) (profile.Store, error) {
	switch driver := viper.GetString("driver"); driver {
	case "file", "":
		return profile.NewFileStore(viper.GetString("store")), nil
	case "memory":
		return profile.NewMemoryStore(), nil
	case "sqlite":
		return profile.NewSQLiteStore(viper.GetString("store"))
	case "postgres":
		url := viper.GetString("database-url")
		if url == "" {
			return nil, errors.New("the postgres driver needs --database-url")
		}
		return profile.NewPostgresStore(ctx, url)
	default:
		return nil, fmt.Errorf("unknown driver %q (want file, memory, sqlite or postgres)", driver)
	}
}

// openService builds the application service over the configured store.
// Callers own the returned service and must Close it.
func openService(ctx context.Context) (*app.Service, error) {
	store, err := openStore(ctx)
	if err != nil {
		return nil, err
	}

	var opts []app.Option
	if seed := viper.GetInt64("seed"); seed != 0 {
		opts = append(opts, app.WithRand(rand.New(rand.NewSource(seed))))
	}

	svc, err := app.New(ctx, store, opts...)
	if err != nil {
		store.Close()
		return nil, err
	}
	return svc, nil
}
