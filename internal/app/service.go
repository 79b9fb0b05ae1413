// Package app wires the profile store, catalog, recommender, playlist
// builder and clusterer into the operations the HTTP and CLI shells expose.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"

	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/clustering"
	"github.com/kush9094/music-recommender-web/internal/playlist"
	"github.com/kush9094/music-recommender-web/internal/profile"
	"github.com/kush9094/music-recommender-web/internal/recommend"
)

// Common errors.
var (
	ErrUserExists   = errors.New("username already exists")
	ErrUserNotFound = errors.New("username not found")
)

// Service implements the application operations over a profile store.
//
// The whole mapping lives in memory while the service runs; every mutating
// operation writes it back wholesale before returning. A lock serializes
// operations so concurrent HTTP handlers see consistent state. Writers in
// separate processes remain last-write-wins.
type Service struct {
	mu       sync.RWMutex
	store    profile.Store
	profiles profile.Map

	catalog     catalog.Catalog
	rng         *rand.Rand
	logger      *log.Logger
	recommender *recommend.Recommender
	builder     *playlist.Builder
	clusterer   *clustering.Clusterer
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog replaces the default song catalog.
func WithCatalog(c catalog.Catalog) Option {
	return func(s *Service) {
		if len(c) > 0 {
			s.catalog = c
		}
	}
}

// WithRand sets the random source shared by the recommender and the
// clusterer. Seeding it makes recommendations and cluster labels
// reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets the logger for service events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New loads the profile mapping from store and builds a Service around it.
func New(ctx context.Context, store profile.Store, opts ...Option) (*Service, error) {
	s := &Service{
		store:   store,
		catalog: catalog.Default(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	profiles, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}
	s.profiles = profiles
	s.logger.Printf("Loaded %d profiles", len(profiles))

	var recOpts []recommend.Option
	var clusterOpts []clustering.Option
	if s.rng != nil {
		recOpts = append(recOpts, recommend.WithRand(s.rng))
		clusterOpts = append(clusterOpts, clustering.WithRand(s.rng))
	}
	s.recommender = recommend.New(s.catalog, recOpts...)
	s.builder = playlist.New(s.catalog)
	s.clusterer = clustering.New(clusterOpts...)

	return s, nil
}

// Close closes the backing store.
func (s *Service) Close() error {
	return s.store.Close()
}

// Register creates a profile for username and persists it.
func (s *Service) Register(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[username]; ok {
		return ErrUserExists
	}

	s.profiles[username] = profile.New()
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.logger.Printf("Registered user %q", username)
	return nil
}

// Login checks that username exists. There are no credentials; a username
// is the whole identity.
func (s *Service) Login(username string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.profiles[username]; !ok {
		return ErrUserNotFound
	}
	return nil
}

// Recommend returns sampled songs for mood and activity and, when anything
// matched, records them in username's listening history and persists. An
// empty match set leaves the profile untouched.
func (s *Service) Recommend(ctx context.Context, username string, mood catalog.Mood, activity catalog.Activity) ([]catalog.Song, error) {
	if !mood.Valid() {
		return nil, fmt.Errorf("unknown mood %q", mood)
	}
	if !activity.Valid() {
		return nil, fmt.Errorf("unknown activity %q", activity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	songs := s.recommender.Recommend(mood, activity)
	if len(songs) == 0 {
		return nil, nil
	}

	p.Record(songs)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return songs, nil
}

// BuildPlaylist derives username's favorite-mood playlist. A non-empty
// result is stored on the profile (public listings serve the stored copy)
// and persisted; an empty history changes nothing and yields an empty mood.
func (s *Service) BuildPlaylist(ctx context.Context, username string) (catalog.Mood, []catalog.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[username]
	if !ok {
		return "", nil, ErrUserNotFound
	}

	mood, ok := playlist.FavoriteMood(p.History)
	if !ok {
		return "", nil, nil
	}

	songs := s.builder.ForMood(mood)
	if len(songs) == 0 {
		return mood, nil, nil
	}

	p.Playlist = songs
	if err := s.persist(ctx); err != nil {
		return "", nil, err
	}
	return mood, songs, nil
}

// PublicPlaylist is another user's stored playlist with its like count.
type PublicPlaylist struct {
	Username string         `json:"username"`
	Songs    []catalog.Song `json:"playlists"`
	Likes    int            `json:"likes"`
}

// PublicPlaylists lists every user except viewer that has a non-empty
// stored playlist, sorted by username.
func (s *Service) PublicPlaylists(viewer string) []PublicPlaylist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []PublicPlaylist
	for _, name := range s.profiles.Usernames() {
		if name == viewer {
			continue
		}
		p := s.profiles[name]
		if len(p.Playlist) == 0 {
			continue
		}
		songs := make([]catalog.Song, len(p.Playlist))
		copy(songs, p.Playlist)
		out = append(out, PublicPlaylist{Username: name, Songs: songs, Likes: p.Likes})
	}
	return out
}

// Like increments username's like counter and persists. The counter is
// monotonic and unbounded.
func (s *Service) Like(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[username]
	if !ok {
		return ErrUserNotFound
	}

	p.Likes++
	return s.persist(ctx)
}

// ClusterUsers groups users by listening behavior. Fewer than two users
// yield no assignments. Nothing is persisted.
func (s *Service) ClusterUsers() []clustering.Assignment {
	// The clusterer draws from the shared random source, so this needs the
	// write lock even though profiles are only read.
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clusterer.Assign(s.profiles)
}

// Profile returns a deep copy of username's profile.
func (s *Service) Profile(username string) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return p.Clone(), nil
}

// Usernames returns every registered username in sorted order.
func (s *Service) Usernames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles.Usernames()
}

// Catalog returns a copy of the song catalog.
func (s *Service) Catalog() catalog.Catalog {
	out := make(catalog.Catalog, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// persist writes the whole mapping back to the store. Callers hold the
// write lock. On failure the in-memory mapping keeps the attempted change;
// the next successful save carries it to disk.
func (s *Service) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.profiles); err != nil {
		return fmt.Errorf("saving profiles: %w", err)
	}
	return nil
}
