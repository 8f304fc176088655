package app

import (
	"quizcraft_backend/docs"
	"quizcraft_backend/internal/config"
	"quizcraft_backend/internal/middleware"
	"quizcraft_backend/internal/model"

	"quizcraft_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. Public routes, no login required
	a.registerPublicRoutes(router, c)

	// 2. Creator routes behind authentication
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerCreatorRoutes(authGroup, c)
	}
}

// Taking a test is anonymous by design: participants identify themselves by
// participant id, never by account, so the whole submission flow stays public.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/tests/code/:code", c.test.ResolveCode)
		public.GET("/tests/:id/take-test", c.test.TakeTest)
		public.POST("/tests/:id/participants/public", c.participant.JoinPublic)
		public.POST("/tests/:id/participants/check", c.participant.Check)

		public.POST("/tests/:id/submit", c.grading.Submit)
		public.GET("/tests/:id/result", c.grading.GetResult)
	}
}

func (a *App) registerCreatorRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	rg.POST("/tests", c.test.CreateTest)
	rg.GET("/tests", c.test.ListTests)
	rg.GET("/tests/:id", c.test.GetTest)
	rg.PUT("/tests/:id", c.test.UpdateTest)
	rg.DELETE("/tests/:id", c.test.DeleteTest)
	rg.PUT("/tests/:id/questions", c.test.SaveQuestions)

	rg.POST("/tests/:id/participants", c.participant.Invite)
	rg.POST("/tests/:id/participants/batch", c.participant.BatchInvite)
	rg.GET("/tests/:id/participants", c.participant.ListParticipants)

	rg.GET("/tests/:id/stats", middleware.RoleMiddleware(model.Creator), c.grading.GetTestStatistics)
}
