package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"caminodevida-backend/internal/shared/middleware"
	"caminodevida-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Region resolution runs on every request so handlers can read the
	// visitor's country, locale and visitor id from the context.
	regionConfig := middleware.DefaultRegionMiddlewareConfig(c.RegionService)
	if c.Config.App.Environment == "development" {
		regionConfig.CookieSecure = false
	}
	router.Use(middleware.RegionMiddleware(regionConfig))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Region and locale resolved for this request
	v1.GET("/region", c.RegionHandler.Current)
	v1.GET("/regions", c.RegionHandler.List)
	v1.GET("/cities", c.RegionHandler.ListCities)

	// Feature flags for the resolved country
	v1.GET("/flags", c.FlagsHandler.GetFlags)
	v1.GET("/flags/:key", c.FlagsHandler.IsEnabled)

	// Content: articles, videos, testimonies
	content := v1.Group("/content")
	{
		content.GET("/:type", c.ContentHandler.List)
		content.GET("/:type/:slug", c.ContentHandler.Get)
	}

	// Studies and per-visitor progress
	studies := v1.Group("/studies")
	{
		studies.GET("/:study", c.ContentHandler.GetStudy)
		studies.GET("/:study/lessons", c.ContentHandler.ListStudyLessons)
		studies.GET("/:study/progress", c.StudyHandler.GetProgress)
		studies.POST("/:study/progress", c.StudyHandler.RecordProgress)
	}

	// Church finder
	v1.GET("/churches", c.ChurchHandler.List)
	v1.GET("/churches/:id", c.ChurchHandler.Get)

	// Events
	v1.GET("/events", c.EventHandler.ListUpcoming)
	v1.GET("/events/:slug", c.EventHandler.GetBySlug)

	// Contact and decision forms
	v1.POST("/contact", c.ContactHandler.SubmitMessage)
	v1.POST("/decisions", c.ContactHandler.SubmitDecision)

	// Chat and the gospel presentation
	chat := v1.Group("/chat")
	{
		chat.POST("", c.ChatHandler.Send)
		chat.GET("/history", c.ChatHandler.History)
		chat.DELETE("/history", c.ChatHandler.Reset)
	}
	v1.GET("/gospel/steps", c.ChatHandler.GospelSteps)
	v1.GET("/gospel/steps/:index", c.ChatHandler.GospelStep)
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Login and refresh are the only unauthenticated admin endpoints.
	auth := v1.Group("/admin/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		// Account management is for full admins only; editors manage content.
		users := admin.Group("/users", middleware.RequireRole("admin"))
		users.GET("", c.UserHandler.List)
		users.POST("", c.UserHandler.Create)
		users.DELETE("/:id", c.UserHandler.Delete)

		admin.PUT("/regions", c.RegionHandler.Upsert)
		admin.DELETE("/regions/:code", c.RegionHandler.Delete)
		admin.POST("/cities", c.RegionHandler.CreateCity)
		admin.DELETE("/cities/:id", c.RegionHandler.DeleteCity)

		admin.GET("/flags", c.FlagsHandler.ListAll)
		admin.PUT("/flags", c.FlagsHandler.Upsert)
		admin.DELETE("/flags/:key", c.FlagsHandler.Delete)
		admin.POST("/flags/cache/clear", c.FlagsHandler.ClearCache)

		admin.POST("/churches", c.ChurchHandler.Create)
		admin.PUT("/churches/:id", c.ChurchHandler.Update)
		admin.DELETE("/churches/:id", c.ChurchHandler.Delete)

		admin.GET("/events", c.EventHandler.ListAll)
		admin.POST("/events", c.EventHandler.Create)
		admin.PUT("/events/:id", c.EventHandler.Update)
		admin.DELETE("/events/:id", c.EventHandler.Delete)
		admin.POST("/events/:id/cover", c.EventHandler.UploadCover)

		admin.GET("/contact/messages", c.ContactHandler.ListMessages)
		admin.GET("/contact/decisions", c.ContactHandler.ListDecisions)
		admin.GET("/contact/decisions/export", c.ContactHandler.ExportDecisions)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Redis == nil {
			redisStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Redis.HealthCheck(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
