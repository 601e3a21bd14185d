package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	mockUC "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionHandler_GetSession_GuestView(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().CurrentView().Return(entity.SessionView{Role: entity.RoleGuest}).Once()

	handler := NewSessionHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSessionTestContext(t, http.MethodGet, "/session")

	err := handler.GetSession(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"isGuest":true`)
	assert.Contains(t, body, `"isLoggedIn":false`)
	assert.Contains(t, body, `"role":"guest"`)
	assert.Contains(t, body, `"effectiveRole":"guest"`)
	assert.NotContains(t, body, `"user"`)
	assert.NotContains(t, body, `"session"`)
}

func TestSessionHandler_GetSession_MerchantView(t *testing.T) {
	userID := uuid.New()
	view := entity.SessionView{
		Session: &entity.Session{
			UserID:       userID,
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresAt:    time.Now().Add(time.Hour),
		},
		User: &entity.User{
			ID:          userID,
			DisplayName: "Asha",
			Email:       "asha@example.com",
			Role:        entity.RoleMerchant,
		},
		Role: entity.RoleMerchant,
		MerchantProfile: &entity.Shop{
			ID:      uuid.New(),
			OwnerID: userID,
			Name:    "Asha Greens",
		},
	}

	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().CurrentView().Return(view).Once()

	handler := NewSessionHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSessionTestContext(t, http.MethodGet, "/session")

	err := handler.GetSession(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"effectiveRole":"merchant-active"`)
	assert.Contains(t, body, `"isMerchant":true`)
	assert.Contains(t, body, `"accessToken":"access-token"`)
	assert.Contains(t, body, `"Asha Greens"`)
}

func TestSessionHandler_GetSession_MerchantPendingView(t *testing.T) {
	userID := uuid.New()
	view := entity.SessionView{
		Session: &entity.Session{UserID: userID, AccessToken: "a", RefreshToken: "r"},
		User:    &entity.User{ID: userID, Role: entity.RoleMerchant},
		Role:    entity.RoleMerchant,
	}

	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().CurrentView().Return(view).Once()

	handler := NewSessionHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSessionTestContext(t, http.MethodGet, "/session")

	err := handler.GetSession(c)
	assert.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, `"effectiveRole":"merchant-pending"`)
	assert.NotContains(t, body, `"merchantProfile"`)
}

func TestSessionHandler_DecideRoute_Loading(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().Decide(policy.ScreenDashboard).
		Return(policy.Decision{Action: policy.ActionLoading}).Once()

	handler := NewSessionHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSessionTestContext(t, http.MethodGet, "/route/decide?screen=dashboard")

	err := handler.DecideRoute(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"loading"`)
}

func TestSessionHandler_DecideRoute_RedirectCarriesQuery(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().Decide(policy.ScreenOnboarding).
		Return(policy.Decision{
			Action: policy.ActionRedirect,
			Target: policy.ScreenLogin,
			Query:  "redirect=/onboarding",
		}).Once()

	handler := NewSessionHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSessionTestContext(t, http.MethodGet, "/route/decide?screen=onboarding")

	err := handler.DecideRoute(c)
	assert.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, `"action":"redirect"`)
	assert.Contains(t, body, `"target":"login"`)
	assert.Contains(t, body, `"query":"redirect=/onboarding"`)
}

func TestSessionHandler_DecideRoute_UnknownScreen(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)

	handler := NewSessionHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSessionTestContext(t, http.MethodGet, "/route/decide?screen=settings")

	err := handler.DecideRoute(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_SCREEN")
}

func TestSessionHandler_RefreshProfile(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().RefreshProfile(mock.Anything).Return().Once()
	sessions.EXPECT().CurrentView().Return(entity.SessionView{Role: entity.RoleUser}).Once()

	handler := NewSessionHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSessionTestContext(t, http.MethodPost, "/session/refresh-profile")

	err := handler.RefreshProfile(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newSessionTestContext(t, http.MethodGet, "/health")

	err := HealthCheck(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
