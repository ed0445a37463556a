// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/workout-api/internal/handler"
	"github.com/deppfellow/workout-api/internal/middleware"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance with the global middleware chain,
// system routes and the resource routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(echoMiddleware.RemoveTrailingSlash())

	// Order matters: the request id and New Relic transaction must exist
	// before the context enhancer builds the request logger.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	writeGuard := middlewares.Auth.Optional()

	registerCategoriaRoutes(router.Group("/categorias"), h.Categoria, writeGuard)
	registerCentroTreinamentoRoutes(router.Group("/centros_treinamento"), h.CentroTreinamento, writeGuard)
	registerAtletaRoutes(router.Group("/atletas"), h.Atleta, writeGuard)

	return router
}

func registerCategoriaRoutes(g *echo.Group, h *handler.CategoriaHandler, guard echo.MiddlewareFunc) {
	g.POST("", h.CreateCategoria, guard)
	g.GET("", h.GetCategorias)
	g.GET("/:id", h.GetCategoriaByID)
	g.PATCH("/:id", h.UpdateCategoria, guard)
	g.DELETE("/:id", h.DeleteCategoria, guard)
}

func registerCentroTreinamentoRoutes(g *echo.Group, h *handler.CentroTreinamentoHandler, guard echo.MiddlewareFunc) {
	g.POST("", h.CreateCentroTreinamento, guard)
	g.GET("", h.GetCentrosTreinamento)
	g.GET("/:id", h.GetCentroTreinamentoByID)
	g.PATCH("/:id", h.UpdateCentroTreinamento, guard)
	g.DELETE("/:id", h.DeleteCentroTreinamento, guard)
}

func registerAtletaRoutes(g *echo.Group, h *handler.AtletaHandler, guard echo.MiddlewareFunc) {
	g.POST("", h.CreateAtleta, guard)
	g.GET("", h.GetAtletas)
	g.GET("/:id", h.GetAtletaByID)
	g.PATCH("/:id", h.UpdateAtleta, guard)
	g.DELETE("/:id", h.DeleteAtleta, guard)
}
