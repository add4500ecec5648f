// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passage/internal/delivery/api/middleware"
	"passage/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProviderHandler *handler.ProviderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	providerHandler *handler.ProviderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		providerHandler: params.ProviderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Local account and recovery flows
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/email/verify", r.accountHandler.VerifyEmail)
		authGroup.POST("/email/verify", r.accountHandler.VerifyEmail)
		authGroup.POST("/password/forgot", r.accountHandler.ForgotPassword)
		authGroup.POST("/password/reset", r.accountHandler.ResetPassword)
	}

	// Provider login and linking; a session is optional here
	providerAuthGroup := e.Group("/auth/:provider")
	{
		providerAuthGroup.GET("", r.providerHandler.Authorize, r.authMiddleware.Identify)
		providerAuthGroup.GET("/callback", r.providerHandler.Callback)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.accountHandler.GetMe)
		meGroup.PATCH("", r.accountHandler.UpdateMe)
		meGroup.DELETE("", r.accountHandler.DeleteMe)
		meGroup.PUT("/password", r.accountHandler.ChangePassword)
		meGroup.POST("/email/verification", r.accountHandler.RequestEmailVerification)
		meGroup.DELETE("/providers/:provider", r.accountHandler.UnlinkProvider)
	}

	providersGroup := apiV1.Group("/providers/:provider")
	{
		providersGroup.GET("/profile", r.providerHandler.GetProviderProfile)
	}
}
