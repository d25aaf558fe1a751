package store

import (
	"context"
	"sync"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/storage"

	"go.uber.org/zap"
)

// SessionStore tracks authentication state and the current user. It is the
// sole writer of the authenticated-user record; the user-administration
// store pushes an updated copy through SetCurrentUser when the edited user
// is the one logged in.
type SessionStore struct {
	mu            sync.Mutex
	authenticated bool
	loading       bool
	err           string
	user          *domain.User

	api    *api.Client
	state  *storage.Store
	bus    *notify.Bus
	logger *zap.Logger
}

func NewSessionStore(apiClient *api.Client, state *storage.Store, bus *notify.Bus, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		api:    apiClient,
		state:  state,
		bus:    bus,
		logger: logger,
	}
}

// Authenticated reports whether a user is logged in.
func (s *SessionStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Loading reports whether a session operation is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last session error message, or "".
func (s *SessionStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// User returns the current user record, or nil when anonymous.
func (s *SessionStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// CheckAuth bootstraps the session from a persisted token. Without one it
// stays anonymous and issues no network call. With one it fetches the
// profile; any failure clears all session state.
func (s *SessionStore) CheckAuth(ctx context.Context) {
	if !s.state.Has(storage.KeyAccessToken) {
		return
	}

	s.setLoading(true)
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		s.logger.Info("session: persisted token rejected", zap.Error(err))
		s.Logout()
		s.setLoading(false)
		return
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.loading = false
	s.mu.Unlock()
	s.changed()
}

// Login posts credentials. On failure the server's message is recorded
// verbatim and false is returned; nothing escapes as an error.
func (s *SessionStore) Login(ctx context.Context, email, password string) bool {
	s.setLoading(true)

	auth, err := s.api.Login(ctx, domain.Credentials{Email: email, Password: password})
	if err != nil {
		s.mu.Lock()
		s.authenticated = false
		s.err = err.Error()
		s.loading = false
		s.mu.Unlock()
		s.changed()
		return false
	}

	return s.establish(auth)
}

// Register creates an account; same contract as Login.
func (s *SessionStore) Register(ctx context.Context, reg domain.Registration) bool {
	s.setLoading(true)

	auth, err := s.api.Register(ctx, reg)
	if err != nil {
		s.mu.Lock()
		s.authenticated = false
		s.err = err.Error()
		s.loading = false
		s.mu.Unlock()
		s.changed()
		return false
	}

	return s.establish(auth)
}

// establish persists the token pair and marks the session authenticated.
func (s *SessionStore) establish(auth *domain.AuthResponse) bool {
	if err := s.state.Set(storage.KeyAccessToken, auth.AccessToken); err != nil {
		s.logger.Error("session: persist access token", zap.Error(err))
	}
	if err := s.state.Set(storage.KeyRefreshToken, auth.RefreshToken); err != nil {
		s.logger.Error("session: persist refresh token", zap.Error(err))
	}

	s.mu.Lock()
	user := auth.User
	s.user = &user
	s.authenticated = true
	s.loading = false
	s.err = ""
	s.mu.Unlock()
	s.changed()

	s.logger.Info("session: authenticated",
		zap.String("email", auth.User.Email),
		zap.String("role", string(auth.User.Role)),
	)
	return true
}

// Logout clears tokens and session state synchronously; the server is not
// called.
func (s *SessionStore) Logout() {
	_ = s.state.Delete(storage.KeyAccessToken)
	_ = s.state.Delete(storage.KeyRefreshToken)

	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.mu.Unlock()
	s.changed()
}

// HandleAuthExpired reacts to an irrecoverable 401: the API client has
// already cleared the tokens; drop the in-memory session and announce the
// forced logout.
func (s *SessionStore) HandleAuthExpired() {
	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.mu.Unlock()
	s.changed()
	s.bus.Publish(notify.TopicAuthExpired, nil)
}

// UpdateProfile edits the current user's record.
func (s *SessionStore) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) bool {
	s.setLoading(true)

	user, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.loading = false
		s.mu.Unlock()
		s.changed()
		return false
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	s.changed()
	return true
}

// SetCurrentUser replaces the stored user record. Called by the user-admin
// store after editing the logged-in user.
func (s *SessionStore) SetCurrentUser(user *domain.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.changed()
}

// HasRole reports whether the current user's role is one of roles.
func (s *SessionStore) HasRole(roles ...domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if s.user.Role == r {
			return true
		}
	}
	return false
}

// ClearErr resets the error message.
func (s *SessionStore) ClearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *SessionStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	if v {
		s.err = ""
	}
	s.mu.Unlock()
	s.changed()
}

func (s *SessionStore) changed() {
	s.bus.Publish(notify.TopicStateChanged, "session")
}
