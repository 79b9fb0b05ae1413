package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/clustering"
)

func TestUserBoundCommandsRequireUser(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cobra.Command
		args []string
	}{
		{"recommend", recommendCmd, []string{"happy", "party"}},
		{"playlist", playlistCmd, nil},
		{"public", publicCmd, nil},
		{"like", likeCmd, []string{"alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.Set("user", "")

			if err := tt.cmd.PreRunE(tt.cmd, tt.args); err == nil {
				t.Error("expected error when user is missing, got nil")
			}

			viper.Set("user", "testuser")
			if err := tt.cmd.PreRunE(tt.cmd, tt.args); err != nil {
				t.Errorf("expected nil when user is set, got %v", err)
			}
		})
	}
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	viper.Reset()
	viper.Set("driver", "oracle")

	if _, err := openStore(context.Background()); err == nil {
		t.Error("expected error for unknown driver, got nil")
	}
}

func TestOpenStorePostgresNeedsURL(t *testing.T) {
	viper.Reset()
	viper.Set("driver", "postgres")
	viper.Set("database-url", "")

	if _, err := openStore(context.Background()); err == nil {
		t.Error("expected error when database-url is missing, got nil")
	}
}

func TestEnvOverridesHyphenatedFlags(t *testing.T) {
	viper.Reset()
	// Point at a file that does not exist so no real config is read.
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	defer func() { cfgFile = "" }()
	t.Setenv("RECOMMENDER_DATABASE_URL", "postgres://localhost/recommender")

	initConfig()

	if got := viper.GetString("database-url"); got != "postgres://localhost/recommender" {
		t.Errorf("database-url = %q, want the env override", got)
	}
}

func TestRenderSongs(t *testing.T) {
	var out bytes.Buffer
	renderSongs(&out, catalog.Default().Filter(catalog.MoodHappy, catalog.ActivityParty))

	got := out.String()
	for _, want := range []string{"Happy", "Pharrell Williams", "Don't Stop Me Now", "Queen"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderClusters(t *testing.T) {
	var out bytes.Buffer
	renderClusters(&out, []clustering.Assignment{
		{Username: "alice", Cluster: 0},
		{Username: "bob", Cluster: 1},
	})

	got := out.String()
	for _, want := range []string{"alice", "bob"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}
