package profile

import (
	"reflect"
	"strings"
	"testing"
)

func TestProfileRowsColumns(t *testing.T) {
	rows, err := newProfileRows(sampleProfiles())
	if err != nil {
		t.Fatalf("newProfileRows() error: %v", err)
	}

	if want := []string{"alice", "bob"}; !reflect.DeepEqual(rows.usernames, want) {
		t.Fatalf("usernames = %v, want %v", rows.usernames, want)
	}
	for name, n := range map[string]int{
		"moods":      len(rows.moods),
		"activities": len(rows.activities),
		"histories":  len(rows.histories),
		"playlists":  len(rows.playlists),
		"likes":      len(rows.likes),
	} {
		if n != len(rows.usernames) {
			t.Errorf("%s column has %d entries, want %d", name, n, len(rows.usernames))
		}
	}

	if got, want := rows.likes, []int{2, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("likes = %v, want %v", got, want)
	}
	if !strings.Contains(rows.histories[0], `"Queen"`) {
		t.Errorf("alice's history document missing her events: %s", rows.histories[0])
	}
	if !strings.Contains(rows.playlists[0], `"Happy"`) {
		t.Errorf("alice's playlist document missing her songs: %s", rows.playlists[0])
	}
	if rows.playlists[1] != "[]" {
		t.Errorf("bob's empty playlist should encode as [], got %s", rows.playlists[1])
	}
}

func TestProfileRowsEmptyMap(t *testing.T) {
	rows, err := newProfileRows(Map{})
	if err != nil {
		t.Fatalf("newProfileRows() error: %v", err)
	}
	if len(rows.usernames) != 0 {
		t.Errorf("expected no rows for an empty map, got %v", rows.usernames)
	}
}
