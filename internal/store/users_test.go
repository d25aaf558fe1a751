package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/go-chi/chi/v5"
)

func TestUserStore_UpdatePushesCurrentUserIntoSession(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.AuthResponse{
			AccessToken:  "tok-access",
			RefreshToken: "tok-refresh",
			User:         domain.User{ID: 5, Email: "me@b.c", Name: "Old Name", Role: domain.RoleAdmin},
		})
	})
	r.Get("/api/users", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []domain.User{
			{ID: 5, Email: "me@b.c", Name: "Old Name", Role: domain.RoleAdmin},
			{ID: 6, Email: "other@b.c", Name: "Other", Role: domain.RoleEmployee},
		})
	})
	r.Put("/api/users/5", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.User{ID: 5, Email: "me@b.c", Name: "New Name", Role: domain.RoleAdmin})
	})

	env := newTestEnv(t, r)
	users := store.NewUserStore(env.api, env.session, env.bus, env.ui, env.logger)

	if !env.session.Login(context.Background(), "me@b.c", "secret") {
		t.Fatalf("login failed: %s", env.session.Err())
	}
	_ = users.FetchAll(context.Background())

	if !users.Update(context.Background(), 5, domain.UserUpdate{Name: "New Name"}) {
		t.Fatalf("update failed: %s", users.Err())
	}

	if u := env.session.User(); u == nil || u.Name != "New Name" {
		t.Errorf("expected session user refreshed, got %+v", u)
	}
}

func TestUserStore_UpdatingOtherUserLeavesSessionAlone(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.AuthResponse{
			AccessToken: "tok-access",
			User:        domain.User{ID: 5, Email: "me@b.c", Name: "Me", Role: domain.RoleAdmin},
		})
	})
	r.Get("/api/users", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []domain.User{
			{ID: 6, Email: "other@b.c", Name: "Other", Role: domain.RoleEmployee},
		})
	})
	r.Put("/api/users/6", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.User{ID: 6, Email: "other@b.c", Name: "Renamed", Role: domain.RoleEmployee})
	})

	env := newTestEnv(t, r)
	users := store.NewUserStore(env.api, env.session, env.bus, env.ui, env.logger)

	_ = env.session.Login(context.Background(), "me@b.c", "secret")
	_ = users.FetchAll(context.Background())

	if !users.Update(context.Background(), 6, domain.UserUpdate{Name: "Renamed"}) {
		t.Fatalf("update failed: %s", users.Err())
	}

	if u := env.session.User(); u == nil || u.Name != "Me" {
		t.Errorf("expected session user untouched, got %+v", u)
	}
}
