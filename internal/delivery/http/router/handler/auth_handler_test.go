package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	domainerrors "bazaar/internal/domain/errors"
	mockUC "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().
		Signup(mock.Anything, usecase.SignupInput{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "Str0ng!Pass",
		}).
		Return(nil).Once()

	handler := NewAuthHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"Str0ng!Pass"}`)

	err := handler.Signup(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	// Tokens and role are observed through GET /session, never here.
	assert.NotContains(t, rec.Body.String(), "accessToken")
}

func TestAuthHandler_Signup_InvalidEmailRejected(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)

	handler := NewAuthHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Asha","email":"not-an-email","password":"Str0ng!Pass"}`)

	err := handler.Signup(c)
	assert.Error(t, err)

	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().
		Login(mock.Anything, usecase.LoginInput{
			Email:    "asha@example.com",
			Password: "Str0ng!Pass",
		}).
		Return(nil).Once()

	handler := NewAuthHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"asha@example.com","password":"Str0ng!Pass"}`)

	err := handler.Login(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "accessToken")
}

func TestAuthHandler_Login_BadCredentialsPropagated(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(domainerrors.ErrInvalidCredentials).Once()

	handler := NewAuthHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"asha@example.com","password":"wrong"}`)

	err := handler.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().Logout(mock.Anything).Return(nil).Once()

	handler := NewAuthHandler(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/logout", "")

	err := handler.Logout(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}
