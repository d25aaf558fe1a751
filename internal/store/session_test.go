package store_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/storage"

	"github.com/go-chi/chi/v5"
)

func TestSessionStore_CheckAuthWithoutTokenSkipsNetwork(t *testing.T) {
	var calls atomic.Int32

	r := chi.NewRouter()
	r.Get("/api/users/profile", func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, domain.User{ID: 1})
	})

	env := newTestEnv(t, r)
	_ = env.state.Delete(storage.KeyAccessToken)

	env.session.CheckAuth(context.Background())

	if env.session.Authenticated() {
		t.Error("expected anonymous session")
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no profile request, got %d", n)
	}
}

func TestSessionStore_CheckAuthRestoresSession(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/users/profile", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.User{ID: 3, Email: "a@b.c", Role: domain.RoleOwner})
	})

	env := newTestEnv(t, r)
	env.session.CheckAuth(context.Background())

	if !env.session.Authenticated() {
		t.Fatal("expected authenticated session")
	}
	if u := env.session.User(); u == nil || u.Email != "a@b.c" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestSessionStore_LoginPersistsTokenPair(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.AuthResponse{
			AccessToken:  "tok-access",
			RefreshToken: "tok-refresh",
			User:         domain.User{ID: 1, Email: "a@b.c", Role: domain.RoleAdmin},
		})
	})

	env := newTestEnv(t, r)
	if !env.session.Login(context.Background(), "a@b.c", "secret") {
		t.Fatalf("expected login to succeed, err: %s", env.session.Err())
	}

	if got := env.state.Get(storage.KeyAccessToken); got != "tok-access" {
		t.Errorf("expected access token persisted, got '%s'", got)
	}
	if got := env.state.Get(storage.KeyRefreshToken); got != "tok-refresh" {
		t.Errorf("expected refresh token persisted, got '%s'", got)
	}
	if !env.session.HasRole(domain.RoleAdmin) {
		t.Error("expected admin role")
	}
}

func TestSessionStore_LoginFailureRecordsServerMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})

	env := newTestEnv(t, r)
	if env.session.Login(context.Background(), "a@b.c", "wrong") {
		t.Fatal("expected login to fail")
	}

	if env.session.Authenticated() {
		t.Error("expected anonymous session after failed login")
	}
	if got := env.session.Err(); got != "Invalid credentials" {
		t.Errorf("expected server message verbatim, got '%s'", got)
	}
}

func TestSessionStore_LogoutClearsTokens(t *testing.T) {
	env := newTestEnv(t, chi.NewRouter())
	_ = env.state.Set(storage.KeyRefreshToken, "tok-refresh")

	env.session.Logout()

	if env.state.Has(storage.KeyAccessToken) || env.state.Has(storage.KeyRefreshToken) {
		t.Error("expected both tokens cleared")
	}
	if env.session.Authenticated() {
		t.Error("expected anonymous session")
	}
}

func TestSessionStore_ForcedLogoutAnnouncedOnBus(t *testing.T) {
	// Every request 401s and the refresh fails too: the API client clears
	// tokens and the session store publishes the expiry event.
	r := chi.NewRouter()
	r.Get("/api/users/profile", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
	})
	r.Post("/api/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "refresh revoked"})
	})

	env := newTestEnv(t, r)
	_ = env.state.Set(storage.KeyRefreshToken, "tok-refresh")

	expired := false
	env.bus.Subscribe(notify.TopicAuthExpired, func(notify.Event) { expired = true })

	env.session.CheckAuth(context.Background())

	if !expired {
		t.Error("expected auth-expired event on the bus")
	}
	if env.session.Authenticated() {
		t.Error("expected session dropped")
	}
	if env.state.Has(storage.KeyAccessToken) {
		t.Error("expected access token cleared")
	}
}
