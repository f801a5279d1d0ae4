package app

import (
	"mlcourse_backend/docs"
	"mlcourse_backend/internal/config"
	"mlcourse_backend/internal/middleware"
	"mlcourse_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.health.Root)
	router.GET("/health", c.health.Health)

	auth := middleware.Auth(cfg.JWT.Secret)

	// User routes keep the original protection split: registration,
	// login, reads and updates by id are open; the full listing and
	// deletion require a token.
	user := router.Group("/user")
	{
		user.POST("", c.auth.Register)
		user.POST("/login", c.auth.Login)
		user.GET("", auth, c.user.List)
		user.GET("/:id", c.user.Get)
		user.PUT("/:id", c.user.Update)
		user.DELETE("/:id", auth, c.user.Delete)
	}

	quiz := router.Group("/quiz", auth)
	{
		quiz.GET("/:level", c.quiz.Get)
		quiz.POST("/:level/submit", c.quiz.Submit)
	}

	content := router.Group("/content", auth)
	{
		content.GET("/menu", c.content.Menu)
		content.GET("/:level", c.content.Section)
	}

	goals := router.Group("/goals", auth)
	{
		goals.POST("", c.goal.Create)
		goals.GET("", c.goal.List)
		goals.PUT("/:id", c.goal.Update)
		goals.DELETE("/:id", c.goal.Delete)
	}

	router.GET("/progress", auth, c.progress.Get)

	certificate := router.Group("/certificate", auth)
	{
		certificate.GET("", c.certificate.Download)
		certificate.GET("/template", c.certificate.GetTemplate)
		certificate.POST("/template", c.certificate.UploadTemplate)
		certificate.DELETE("/template", c.certificate.DeleteTemplate)
	}
}
