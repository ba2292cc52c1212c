package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Amarhadpad/artistgrade/internal/server/http/handlers"
	"github.com/Amarhadpad/artistgrade/internal/server/http/middleware"
)

// HealthChecker reports storage availability for the ping endpoint.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, health HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	requestHandler := handlers.NewRequestHandler(facade)
	dashboardHandler := handlers.NewDashboardHandler(facade)
	mediaHandler := handlers.NewMediaHandler(facade)

	engine.GET("/ping", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/orders", orderHandler.Create)
	api.POST("/requests", requestHandler.Submit)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/current_user", authHandler.CurrentUser)

	admin := authed.Group("")
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	admin.DELETE("/orders/:id", orderHandler.Delete)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/requests", requestHandler.List)
	admin.GET("/dashboard/counts", dashboardHandler.Counts)
	admin.POST("/admin/upload", mediaHandler.Upload)
	admin.GET("/admin/images", mediaHandler.List)

	return engine
}
