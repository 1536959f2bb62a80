package handlers

import (
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/middleware"
	"github.com/videotube/videotube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/videotube/videotube_backend/cmd/docs"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1/users group. Routes split into a
// public set, an optional-auth set and an authenticated set rather than a
// single middleware applied to the whole group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	authHandler := NewAuthHandler(services.User, services.Token, cfg)
	userHandler := NewUserHandler(services.User)
	channelHandler := NewChannelHandler(services.Channel)
	historyHandler := NewHistoryHandler(services.History)

	requireAuth := middleware.AuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName, services.User)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName, services.User)

	users := r.Group("/api/v1/users")

	// Public routes
	users.POST("/register", authHandler.RegisterUser)
	users.POST("/login", authHandler.LoginUser)
	users.POST("/refresh-token", authHandler.RefreshAccessToken)

	// Channel profiles are viewable anonymously; the requester, when
	// present, only affects the isSubscribed flag.
	users.GET("/channel/:username", optionalAuth, channelHandler.GetChannelProfile)

	// Authenticated routes
	secured := users.Group("", requireAuth)
	secured.POST("/logout", authHandler.LogoutUser)
	secured.POST("/change-password", authHandler.ChangePassword)
	secured.GET("/current-user", userHandler.GetCurrentUser)
	secured.PATCH("/update-account", userHandler.UpdateAccountDetails)
	secured.PATCH("/avatar", userHandler.UpdateAvatar)
	secured.PATCH("/cover-image", userHandler.UpdateCoverImage)
	secured.POST("/channel/:username/subscribe", channelHandler.Subscribe)
	secured.DELETE("/channel/:username/subscribe", channelHandler.Unsubscribe)
	secured.GET("/watch-history", historyHandler.GetWatchHistory)
	secured.POST("/watch-history/:videoId", historyHandler.AddToWatchHistory)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
