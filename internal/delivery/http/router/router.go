// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SessionHandler    *handler.SessionHandler
	OnboardingHandler *handler.OnboardingHandler
	ShopHandler       *handler.ShopHandler
	SupportHandler    *handler.SupportHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	sessionHandler    *handler.SessionHandler
	onboardingHandler *handler.OnboardingHandler
	shopHandler       *handler.ShopHandler
	supportHandler    *handler.SupportHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		sessionHandler:    params.SessionHandler,
		onboardingHandler: params.OnboardingHandler,
		shopHandler:       params.ShopHandler,
		supportHandler:    params.SupportHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Login and Signup acknowledge only; the resolved role
	// arrives asynchronously and is observed through GET /session.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Session view and route policy. Public: guests get a guest view and
	// guest routing decisions, not a 401.
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/refresh-profile", r.sessionHandler.RefreshProfile)
	}
	e.GET("/route/decide", r.sessionHandler.DecideRoute)

	// Onboarding wizard routes, authenticated.
	onboardingGroup := e.Group("/onboarding")
	onboardingGroup.Use(r.authMiddleware.Authenticate)
	{
		onboardingGroup.POST("/mount", r.onboardingHandler.Mount)
		onboardingGroup.DELETE("", r.onboardingHandler.Teardown)
		onboardingGroup.GET("", r.onboardingHandler.State)
		onboardingGroup.PUT("/form", r.onboardingHandler.UpdateForm)
		onboardingGroup.POST("/next", r.onboardingHandler.NextStep)
		onboardingGroup.POST("/back", r.onboardingHandler.PrevStep)
		onboardingGroup.POST("/locate", r.onboardingHandler.Locate)
		onboardingGroup.POST("/photo", r.onboardingHandler.AttachPhoto)
		onboardingGroup.POST("/launch", r.onboardingHandler.Launch)
	}

	// Merchant storefront routes, authenticated with the merchant role.
	shopGroup := e.Group("/shop")
	shopGroup.Use(r.authMiddleware.Authenticate)
	shopGroup.Use(r.authMiddleware.RequireRole("merchant"))
	{
		shopGroup.GET("", r.shopHandler.GetMyShop)
		shopGroup.GET("/qrcode", r.shopHandler.GetStorefrontQR)
	}

	// Support chat, authenticated.
	supportGroup := e.Group("/support")
	supportGroup.Use(r.authMiddleware.Authenticate)
	{
		supportGroup.POST("/chat", r.supportHandler.Chat)
	}
}
