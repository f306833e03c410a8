package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/merchanthub/internal/config"
	"github.com/sellerdesk/merchanthub/internal/server/http/dto"
	"github.com/sellerdesk/merchanthub/internal/server/http/handlers"
	"github.com/sellerdesk/merchanthub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MerchantFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.Err("method not allowed", ""))
	})

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, cfg.DemoMode)
	onboardingHandler := handlers.NewOnboardingHandler(facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.GET("/demo-email", authHandler.DemoEmail)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/user/session", authHandler.Session)
	authed.POST("/account/onboard", onboardingHandler.Onboard)
	authed.GET("/account", onboardingHandler.Account)

	return engine
}
