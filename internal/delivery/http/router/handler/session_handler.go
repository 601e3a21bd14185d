package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the session view and the route policy.
type SessionHandler struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessions usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// SessionResponse is the wire form of the session view.
type SessionResponse struct {
	IsLoading     bool             `json:"isLoading"`
	IsGuest       bool             `json:"isGuest"`
	IsLoggedIn    bool             `json:"isLoggedIn"`
	IsMerchant    bool             `json:"isMerchant"`
	Role          string           `json:"role"`
	EffectiveRole string           `json:"effectiveRole"`
	User          *UserResponse    `json:"user,omitempty"`
	Merchant      *ShopResponse    `json:"merchantProfile,omitempty"`
	Session       *SessionTokenDTO `json:"session,omitempty"`
}

// UserResponse is the wire form of the resolved profile row.
type UserResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// SessionTokenDTO carries the issued tokens back to the client.
type SessionTokenDTO struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func toSessionResponse(view entity.SessionView) *SessionResponse {
	resp := &SessionResponse{
		IsLoading:     view.IsLoading,
		IsGuest:       view.IsGuest(),
		IsLoggedIn:    view.IsLoggedIn(),
		IsMerchant:    view.IsMerchant(),
		Role:          view.Role.String(),
		EffectiveRole: view.EffectiveRole().String(),
	}

	if view.User != nil {
		resp.User = &UserResponse{
			ID:          view.User.ID.String(),
			DisplayName: view.User.DisplayName,
			Email:       view.User.Email,
			Role:        view.User.Role.String(),
			AvatarURL:   view.User.AvatarURL,
		}
	}
	if view.MerchantProfile != nil {
		resp.Merchant = toShopResponse(view.MerchantProfile)
	}
	if view.Session != nil {
		resp.Session = &SessionTokenDTO{
			AccessToken:  view.Session.AccessToken,
			RefreshToken: view.Session.RefreshToken,
			ExpiresAt:    view.Session.ExpiresAt,
		}
	}

	return resp
}

// GetSession returns the current session view.
func (h *SessionHandler) GetSession(c echo.Context) error {
	view := h.sessions.CurrentView()

	return response.Success(c, http.StatusOK, toSessionResponse(view), "Session retrieved")
}

// RefreshProfile re-runs the profile resolve for the current session.
// Failures degrade silently, so the response only acknowledges the attempt.
func (h *SessionHandler) RefreshProfile(c echo.Context) error {
	h.sessions.RefreshProfile(c.Request().Context())

	return response.Success(c, http.StatusAccepted, toSessionResponse(h.sessions.CurrentView()), "Profile refresh attempted")
}

// RouteDecisionResponse is the wire form of a routing decision.
type RouteDecisionResponse struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
	Query  string `json:"query,omitempty"`
}

// DecideRoute evaluates the route policy for the requested screen.
func (h *SessionHandler) DecideRoute(c echo.Context) error {
	screen := policy.Screen(c.QueryParam("screen"))
	if !screen.IsValid() {
		return response.BadRequest(c, "UNKNOWN_SCREEN", "Unknown screen: "+string(screen))
	}

	decision := h.sessions.Decide(screen)

	return response.Success(c, http.StatusOK, RouteDecisionResponse{
		Action: string(decision.Action),
		Target: string(decision.Target),
		Query:  decision.Query,
	}, "Route decided")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
