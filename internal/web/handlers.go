package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kush9094/music-recommender-web/internal/app"
	"github.com/kush9094/music-recommender-web/internal/catalog"
	"github.com/kush9094/music-recommender-web/internal/clustering"
)

type credentialsRequest struct {
	Username string `json:"username"`
}

type recommendationRequest struct {
	Mood     string `json:"mood"`
	Activity string `json:"activity"`
}

type feedbackRequest struct {
	Liked bool `json:"liked"`
}

type userResponse struct {
	Username string `json:"username"`
}

type songsResponse struct {
	Songs      []catalog.Song     `json:"songs"`
	Moods      []catalog.Mood     `json:"moods"`
	Activities []catalog.Activity `json:"activities"`
}

type recommendationsResponse struct {
	Songs []catalog.Song `json:"songs"`
}

type playlistResponse struct {
	FavoriteMood catalog.Mood   `json:"favorite_mood,omitempty"`
	Songs        []catalog.Song `json:"songs"`
	Message      string         `json:"message,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Handlers contains HTTP handlers for the recommender API.
type Handlers struct {
	service  *app.Service
	sessions SessionManager
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *app.Service, sessions SessionManager) *Handlers {
	return &Handlers{
		service:  service,
		sessions: sessions,
	}
}

type ctxKey int

const sessionCtxKey ctxKey = 0

// RequireSession rejects requests without a valid session and stashes the
// session in the request context for the handler.
func (h *Handlers) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := h.sessions.GetFromRequest(r)
		if session == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session stored by RequireSession.
func sessionFrom(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionCtxKey).(*Session)
	return session
}

// HealthCheck reports liveness (GET /health).
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Register creates a profile and opens a session (POST /api/register).
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if err := h.service.Register(r.Context(), username); err != nil {
		if errors.Is(err, app.ErrUserExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessions.Create(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "creating session")
		return
	}
	h.sessions.SetCookie(w, session)

	writeJSON(w, http.StatusCreated, userResponse{Username: username})
}

// Login opens a session for an existing profile (POST /api/login).
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if err := h.service.Login(username); err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessions.Create(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "creating session")
		return
	}
	h.sessions.SetCookie(w, session)

	writeJSON(w, http.StatusOK, userResponse{Username: username})
}

// Logout ends the session (POST /api/logout).
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if session := sessionFrom(r.Context()); session != nil {
		h.sessions.Delete(r.Context(), session.ID)
	}
	h.sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me reports the session's username (GET /api/me).
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())
	writeJSON(w, http.StatusOK, userResponse{Username: session.Username})
}

// Songs lists the catalog and the mood and activity choices (GET /api/songs).
func (h *Handlers) Songs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, songsResponse{
		Songs:      h.service.Catalog(),
		Moods:      catalog.Moods(),
		Activities: catalog.Activities(),
	})
}

// Recommendations samples songs for a mood and activity and records them in
// the session user's history (POST /api/recommendations).
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mood, err := catalog.ParseMood(req.Mood)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	activity, err := catalog.ParseActivity(req.Activity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	songs, err := h.service.Recommend(r.Context(), session.Username, mood, activity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if songs == nil {
		songs = []catalog.Song{}
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{Songs: songs})
}

// Playlist derives and stores the session user's favorite-mood playlist
// (GET /api/playlist).
func (h *Handlers) Playlist(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())

	mood, songs, err := h.service.BuildPlaylist(r.Context(), session.Username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if mood == "" {
		writeJSON(w, http.StatusOK, playlistResponse{
			Songs:   []catalog.Song{},
			Message: "listen to some recommendations first",
		})
		return
	}
	if songs == nil {
		songs = []catalog.Song{}
	}

	writeJSON(w, http.StatusOK, playlistResponse{FavoriteMood: mood, Songs: songs})
}

// PublicPlaylists lists other users' stored playlists (GET /api/playlists).
func (h *Handlers) PublicPlaylists(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())

	shared := h.service.PublicPlaylists(session.Username)
	if shared == nil {
		shared = []app.PublicPlaylist{}
	}
	writeJSON(w, http.StatusOK, shared)
}

// Like adds a like to another user's playlist (POST /api/playlists/{username}/like).
func (h *Handlers) Like(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())

	owner := chi.URLParam(r, "username")
	if owner == session.Username {
		writeError(w, http.StatusBadRequest, "cannot like your own playlist")
		return
	}

	if err := h.service.Like(r.Context(), owner); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clusters groups users by listening behavior (GET /api/clusters).
func (h *Handlers) Clusters(w http.ResponseWriter, _ *http.Request) {
	assignments := h.service.ClusterUsers()
	if assignments == nil {
		assignments = []clustering.Assignment{}
	}
	writeJSON(w, http.StatusOK, assignments)
}

// Feedback acknowledges recommendation feedback (POST /api/feedback).
// Feedback is logged, not stored.
func (h *Handlers) Feedback(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log.Printf("feedback from %s: liked=%t", session.Username, req.Liked)
	writeJSON(w, http.StatusAccepted, messageResponse{Message: "thank you for your feedback"})
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
