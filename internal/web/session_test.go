package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSessionStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session, err := store.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if session.ID == "" {
		t.Fatal("Create() returned an empty ID")
	}

	got := store.Get(ctx, session.ID)
	if got == nil || got.Username != "alice" {
		t.Fatalf("Get() = %+v, want alice's session", got)
	}

	if store.Get(ctx, "nope") != nil {
		t.Error("Get(unknown) should return nil")
	}

	store.Delete(ctx, session.ID)
	if store.Get(ctx, session.ID) != nil {
		t.Error("Get() after Delete() should return nil")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session, err := store.Create(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	store.sessions[session.ID].CreatedAt = time.Now().Add(-sessionTTL - time.Minute)

	if store.Get(ctx, session.ID) != nil {
		t.Error("expired session should not be returned")
	}
}

func TestSessionCookieRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session, err := store.Create(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	store.SetCookie(rec, session)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	got := store.GetFromRequest(req)
	if got == nil || got.ID != session.ID {
		t.Fatalf("GetFromRequest() = %+v, want session %s", got, session.ID)
	}

	// A cleared cookie no longer resolves.
	rec = httptest.NewRecorder()
	store.ClearCookie(rec)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	if store.GetFromRequest(req) != nil {
		t.Error("cleared cookie should not resolve to a session")
	}
}
