// Package guard gates navigation on session state and role membership.
// Guards are pure functions of a session snapshot; they hold no state.
package guard

import "github.com/stockpilot/stockpilot-go/internal/domain"

// Tier is a protection level for a view.
type Tier int

const (
	// TierAuthenticated admits any logged-in user.
	TierAuthenticated Tier = iota
	// TierOwner admits owners and admins.
	TierOwner
	// TierAdmin admits admins only.
	TierAdmin
)

// Decision is the outcome of evaluating a guard.
type Decision int

const (
	// Allow renders the guarded view.
	Allow Decision = iota
	// Pending renders a placeholder while the session is still loading.
	Pending
	// RedirectLogin sends the visitor to the login view.
	RedirectLogin
	// RedirectHome sends an authenticated but under-privileged user to
	// the default landing view.
	RedirectHome
)

// Session is the slice of session state a guard reads.
type Session interface {
	Loading() bool
	Authenticated() bool
	HasRole(roles ...domain.Role) bool
}

// allowed lists the roles admitted per tier. TierAuthenticated is handled
// separately: any authenticated user passes.
var allowed = map[Tier][]domain.Role{
	TierOwner: {domain.RoleOwner, domain.RoleAdmin},
	TierAdmin: {domain.RoleAdmin},
}

// Evaluate applies the three stacked checks in order: still loading →
// Pending; not authenticated → RedirectLogin; role outside the tier's set
// → RedirectHome.
func Evaluate(s Session, tier Tier) Decision {
	if s.Loading() {
		return Pending
	}
	if !s.Authenticated() {
		return RedirectLogin
	}
	if tier == TierAuthenticated {
		return Allow
	}
	if !s.HasRole(allowed[tier]...) {
		return RedirectHome
	}
	return Allow
}
