// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rock-catalog/internal/handler"
	"github.com/iliyamo/rock-catalog/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the register/login endpoints under /api/auth.
// The rate limiter is applied to the whole group; pass nil to run without it.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterRocks registers the owner-scoped specimen endpoints and the public
// upload-serving route. The uploads route is registered directly on the Echo
// instance so the JWT middleware of the protected group never applies to it.
func RegisterRocks(e *echo.Echo, r *handler.RockHandler, up *handler.UploadHandler, jwtSecret string) {
	e.GET("/api/rocks/uploads/*", up.Serve)

	g := e.Group("/api/rocks")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.GET("", r.List)
	g.POST("", r.Create)
	g.DELETE("/:id", r.Delete)
}
