package policy

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableViews enumerates every view the session store can actually
// produce once loading has finished: guest, shopper, merchant without a
// storefront, and merchant with a storefront.
func reachableViews() map[string]View {
	return map[string]View{
		"guest":            {IsGuest: true, Role: entity.RoleGuest},
		"user":             {Role: entity.RoleUser},
		"merchant-pending": {Role: entity.RoleMerchant},
		"merchant-active":  {Role: entity.RoleMerchant, HasMerchantProfile: true},
	}
}

func TestDecide_GuestOnDashboardRedirectsToOnboarding(t *testing.T) {
	decision := Decide(ScreenDashboard, View{IsGuest: true, Role: entity.RoleGuest})

	require.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, ScreenOnboarding, decision.Target)
}

func TestDecide_Table(t *testing.T) {
	views := reachableViews()

	tests := []struct {
		name   string
		screen Screen
		view   View
		want   Decision
	}{
		{
			name:   "merchant without shop lands on onboarding, not dashboard",
			screen: ScreenDashboard,
			view:   views["merchant-pending"],
			want:   Decision{Action: ActionRedirect, Target: ScreenOnboarding},
		},
		{
			name:   "merchant with shop renders dashboard",
			screen: ScreenDashboard,
			view:   views["merchant-active"],
			want:   Decision{Action: ActionRender},
		},
		{
			name:   "guest on onboarding is sent to login with a redirect back",
			screen: ScreenOnboarding,
			view:   views["guest"],
			want:   Decision{Action: ActionRedirect, Target: ScreenLogin, Query: "redirect=/onboarding"},
		},
		{
			name:   "merchant-pending may render onboarding",
			screen: ScreenOnboarding,
			view:   views["merchant-pending"],
			want:   Decision{Action: ActionRender},
		},
		{
			name:   "shopper on catalog management is sent to onboarding",
			screen: ScreenCatalog,
			view:   views["user"],
			want:   Decision{Action: ActionRedirect, Target: ScreenOnboarding},
		},
		{
			name:   "guest on catalog management is sent to onboarding",
			screen: ScreenCatalog,
			view:   views["guest"],
			want:   Decision{Action: ActionRedirect, Target: ScreenOnboarding},
		},
		{
			name:   "merchant renders catalog management",
			screen: ScreenCatalog,
			view:   views["merchant-active"],
			want:   Decision{Action: ActionRender},
		},
		{
			name:   "signed-in shopper on login lands on discovery",
			screen: ScreenLogin,
			view:   views["user"],
			want:   Decision{Action: ActionRedirect, Target: ScreenDiscovery},
		},
		{
			name:   "signed-in merchant on landing lands on dashboard",
			screen: ScreenLanding,
			view:   views["merchant-active"],
			want:   Decision{Action: ActionRedirect, Target: ScreenDashboard},
		},
		{
			name:   "guest stays on public screens",
			screen: ScreenLanding,
			view:   views["guest"],
			want:   Decision{Action: ActionRender},
		},
		{
			name:   "guest renders discovery",
			screen: ScreenDiscovery,
			view:   views["guest"],
			want:   Decision{Action: ActionRender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.screen, tt.view))
		})
	}
}

func TestDecide_LoadingNeverRendersProtectedContent(t *testing.T) {
	for _, screen := range Screens() {
		decision := Decide(screen, View{IsLoading: true, IsGuest: true, Role: entity.RoleGuest})
		assert.Equal(t, ActionLoading, decision.Action, "screen %s", screen)
	}
}

func TestDecide_TotalOverReachableViews(t *testing.T) {
	for name, view := range reachableViews() {
		for _, screen := range Screens() {
			decision := Decide(screen, view)
			switch decision.Action {
			case ActionRender:
				assert.Empty(t, decision.Target, "render carries no target (%s/%s)", name, screen)
			case ActionRedirect:
				assert.True(t, decision.Target.IsValid(), "redirect target must be a known screen (%s/%s)", name, screen)
				assert.NotEqual(t, screen, decision.Target, "no self redirect (%s/%s)", name, screen)
			default:
				t.Fatalf("unexpected action %q for %s/%s", decision.Action, name, screen)
			}
		}
	}
}

// TestDecide_RedirectGraphIsAcyclic follows redirects from every screen under
// every reachable view. The view is fixed while following, which models a
// client whose session state does not change mid-navigation; the chain must
// reach a rendering screen without revisiting any screen.
func TestDecide_RedirectGraphIsAcyclic(t *testing.T) {
	for name, view := range reachableViews() {
		for _, start := range Screens() {
			visited := map[Screen]bool{}
			current := start

			for {
				require.False(t, visited[current],
					"redirect cycle for view %q starting at %q: revisited %q", name, start, current)
				visited[current] = true

				decision := Decide(current, view)
				if decision.Action == ActionRender {
					break
				}

				require.Equal(t, ActionRedirect, decision.Action)
				current = decision.Target
			}
		}
	}
}
