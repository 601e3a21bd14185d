// Package policy contains the pure routing rules that decide, from the
// current session view, whether a screen may render or must redirect.
// Every protected screen consults this single table-driven function; there
// are no per-screen ad hoc checks, which is what keeps the redirect graph
// testable for cycles.
package policy

import "bazaar/internal/domain/entity"

// Screen identifies a client screen gated by the route policy.
type Screen string

const (
	// ScreenLanding is the public entry screen.
	ScreenLanding Screen = "landing"
	// ScreenLogin hosts the credential form.
	ScreenLogin Screen = "login"
	// ScreenDiscovery is the shopper-facing storefront browser.
	ScreenDiscovery Screen = "discovery"
	// ScreenDashboard is the merchant dashboard.
	ScreenDashboard Screen = "dashboard"
	// ScreenOnboarding hosts the merchant onboarding wizard.
	ScreenOnboarding Screen = "onboarding"
	// ScreenCatalog is the merchant product catalog management screen.
	ScreenCatalog Screen = "product-catalog-management"
)

// IsValid reports whether the screen is known to the policy.
func (s Screen) IsValid() bool {
	switch s {
	case ScreenLanding, ScreenLogin, ScreenDiscovery, ScreenDashboard, ScreenOnboarding, ScreenCatalog:
		return true
	default:
		return false
	}
}

// Action is the outcome kind of a routing decision.
type Action string

const (
	// ActionRender allows the screen to render.
	ActionRender Action = "render"
	// ActionRedirect sends the client to Decision.Target instead.
	ActionRedirect Action = "redirect"
	// ActionLoading instructs the screen to show a loading indicator.
	// Protected content must never flash before the first resolution
	// attempt has completed.
	ActionLoading Action = "loading"
)

// View is the minimal projection of the session store state the policy
// depends on. Keeping it flat makes the reachable state space enumerable.
type View struct {
	IsLoading          bool
	IsGuest            bool
	Role               entity.Role
	HasMerchantProfile bool
}

// ViewOf projects a full session view into the policy's input shape.
func ViewOf(v entity.SessionView) View {
	return View{
		IsLoading:          v.IsLoading,
		IsGuest:            v.IsGuest(),
		Role:               v.Role,
		HasMerchantProfile: v.HasMerchantProfile(),
	}
}

// Decision is the result of evaluating the policy for one screen.
type Decision struct {
	Action Action
	Target Screen // Set only when Action == ActionRedirect.
	Query  string // Optional query string carried to the target, e.g. "redirect=/onboarding".
}

func render() Decision {
	return Decision{Action: ActionRender}
}

func redirect(target Screen) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

func redirectWithQuery(target Screen, query string) Decision {
	return Decision{Action: ActionRedirect, Target: target, Query: query}
}

// rule is one row of the policy table: when cond holds for the view, the
// screen redirects to the decision produced by then.
type rule struct {
	screen Screen
	cond   func(View) bool
	then   func(View) Decision
}

// table is the complete redirect rule set. A screen without a matching row
// renders. Order within the table is irrelevant: at most one row matches per
// (screen, view) pair because rows for the same screen have disjoint guards.
var table = []rule{
	{
		// A merchant with no storefront lands on onboarding, not the dashboard.
		screen: ScreenDashboard,
		cond: func(v View) bool {
			return v.IsGuest || (v.Role == entity.RoleMerchant && !v.HasMerchantProfile)
		},
		then: func(View) Decision { return redirect(ScreenOnboarding) },
	},
	{
		screen: ScreenOnboarding,
		cond:   func(v View) bool { return v.IsGuest },
		then: func(View) Decision {
			return redirectWithQuery(ScreenLogin, "redirect=/onboarding")
		},
	},
	{
		screen: ScreenCatalog,
		cond:   func(v View) bool { return v.Role != entity.RoleMerchant },
		then:   func(View) Decision { return redirect(ScreenOnboarding) },
	},
	{
		screen: ScreenLogin,
		cond:   func(v View) bool { return !v.IsGuest },
		then:   signedInHome,
	},
	{
		screen: ScreenLanding,
		cond:   func(v View) bool { return !v.IsGuest },
		then:   signedInHome,
	},
}

// signedInHome sends an authenticated visitor off the public screens:
// merchants to the dashboard, shoppers to discovery.
func signedInHome(v View) Decision {
	if v.Role == entity.RoleMerchant {
		return redirect(ScreenDashboard)
	}

	return redirect(ScreenDiscovery)
}

// Decide maps a screen and the current view to exactly one decision.
// It is pure and total: every (screen, view) pair yields a single outcome.
// While the first resolution attempt is still in flight the only allowed
// outcome is ActionLoading.
func Decide(screen Screen, v View) Decision {
	if v.IsLoading {
		return Decision{Action: ActionLoading}
	}

	for _, r := range table {
		if r.screen == screen && r.cond(v) {
			return r.then(v)
		}
	}

	return render()
}

// Screens lists every screen the policy knows about, for exhaustive checks.
func Screens() []Screen {
	return []Screen{
		ScreenLanding,
		ScreenLogin,
		ScreenDiscovery,
		ScreenDashboard,
		ScreenOnboarding,
		ScreenCatalog,
	}
}
