package store

import (
	"context"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"

	"go.uber.org/zap"
)

// UserStore is the user-administration container. It never creates or
// deletes accounts (registration owns creation; deactivation is an
// update), and when the edited user is the one logged in it pushes the
// fresh record into the session store.
type UserStore struct {
	*Container[domain.User]

	api     *api.Client
	session *SessionStore
}

func NewUserStore(apiClient *api.Client, session *SessionStore, bus *notify.Bus, ui *UIStore, logger *zap.Logger) *UserStore {
	return &UserStore{
		Container: newContainer("users", func(u domain.User) int64 { return u.ID }, bus, ui, logger),
		api:       apiClient,
		session:   session,
	}
}

func (s *UserStore) FetchAll(ctx context.Context) bool {
	return s.fetchAll(ctx, func(ctx context.Context) ([]domain.User, error) {
		return s.api.ListUsers(ctx)
	})
}

func (s *UserStore) FetchOne(ctx context.Context, id int64) bool {
	return s.fetchOne(ctx, func(ctx context.Context) (*domain.User, error) {
		return s.api.GetUser(ctx, id)
	})
}

func (s *UserStore) Update(ctx context.Context, id int64, update domain.UserUpdate) bool {
	ok := s.update(ctx, id, "User updated", func(ctx context.Context) (*domain.User, error) {
		return s.api.UpdateUser(ctx, id, update)
	})
	if !ok {
		return false
	}

	if current := s.session.User(); current != nil && current.ID == id {
		if fresh := s.Selected(); fresh != nil && fresh.ID == id {
			s.session.SetCurrentUser(fresh)
		} else {
			for _, u := range s.Items() {
				if u.ID == id {
					user := u
					s.session.SetCurrentUser(&user)
					break
				}
			}
		}
	}
	return true
}
