package guard_test

import (
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/guard"
)

// --- Mocks ---

type fakeSession struct {
	loading       bool
	authenticated bool
	role          domain.Role
}

func (f *fakeSession) Loading() bool       { return f.loading }
func (f *fakeSession) Authenticated() bool { return f.authenticated }
func (f *fakeSession) HasRole(roles ...domain.Role) bool {
	for _, r := range roles {
		if r == f.role {
			return true
		}
	}
	return false
}

// --- Tests ---

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		session fakeSession
		tier    guard.Tier
		want    guard.Decision
	}{
		{
			name:    "loading session is pending",
			session: fakeSession{loading: true},
			tier:    guard.TierAuthenticated,
			want:    guard.Pending,
		},
		{
			name:    "anonymous visitor goes to login",
			session: fakeSession{},
			tier:    guard.TierAuthenticated,
			want:    guard.RedirectLogin,
		},
		{
			name:    "anonymous visitor goes to login even on admin tier",
			session: fakeSession{},
			tier:    guard.TierAdmin,
			want:    guard.RedirectLogin,
		},
		{
			name:    "employee passes authenticated tier",
			session: fakeSession{authenticated: true, role: domain.RoleEmployee},
			tier:    guard.TierAuthenticated,
			want:    guard.Allow,
		},
		{
			name:    "employee bounced home from owner tier",
			session: fakeSession{authenticated: true, role: domain.RoleEmployee},
			tier:    guard.TierOwner,
			want:    guard.RedirectHome,
		},
		{
			name:    "employee bounced home from admin tier",
			session: fakeSession{authenticated: true, role: domain.RoleEmployee},
			tier:    guard.TierAdmin,
			want:    guard.RedirectHome,
		},
		{
			name:    "owner passes owner tier",
			session: fakeSession{authenticated: true, role: domain.RoleOwner},
			tier:    guard.TierOwner,
			want:    guard.Allow,
		},
		{
			name:    "owner bounced home from admin tier",
			session: fakeSession{authenticated: true, role: domain.RoleOwner},
			tier:    guard.TierAdmin,
			want:    guard.RedirectHome,
		},
		{
			name:    "admin passes every tier",
			session: fakeSession{authenticated: true, role: domain.RoleAdmin},
			tier:    guard.TierAdmin,
			want:    guard.Allow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := guard.Evaluate(&tc.session, tc.tier); got != tc.want {
				t.Errorf("expected decision %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEvaluate_LoadingWinsOverRole(t *testing.T) {
	s := &fakeSession{loading: true, authenticated: true, role: domain.RoleAdmin}
	if got := guard.Evaluate(s, guard.TierAdmin); got != guard.Pending {
		t.Errorf("expected Pending while loading, got %v", got)
	}
}
