package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/internal/shared/middleware"
	"bookstore-api/pkg/container"
)

// SetupRouter builds the route table. The route set is small and
// non-overlapping; paths match the public API exactly.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetricsCollector(registry)

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		metrics.Middleware(),
	)

	router.GET("/health_check", healthCheckHandler(c.DB))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)
	setupUserRoutes(router, c)

	return router
}

func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/authors", c.AuthorHandler.Index)
	router.GET("/authors/:id", c.AuthorHandler.Show)
	router.POST("/authors/create", c.AuthorHandler.Create)
	router.POST("/authors/delete", c.AuthorHandler.Delete)
	router.GET("/seed_authors", c.AuthorHandler.Seed)
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/books", c.BookHandler.Index)
	router.GET("/books/:id", c.BookHandler.Show)
	router.POST("/books/create", c.BookHandler.Create)
	router.POST("/books/delete", c.BookHandler.Delete)
}

func setupUserRoutes(router *gin.Engine, c *container.Container) {
	router.POST("/users/create", c.UserHandler.Create)
}

// healthCheckHandler answers liveness probes with an empty 200 while
// the database is reachable.
func healthCheckHandler(db *database.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	}
}
