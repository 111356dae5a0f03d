package app

import (
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Content catalog
		api.GET("/roadmaps", c.content.GetRoadmaps)
		api.GET("/roadmap", c.content.GetRoadmap)
		api.GET("/learning-path", c.content.GetLearningPath)
		api.GET("/agents", c.content.GetAgents)

		a.registerAssessmentRoutes(api, c)
		a.registerUserRoutes(api, c)
		a.registerSkillRoutes(api, c)

		api.GET("/leaderboard", c.progress.GetLeaderboard)
		api.GET("/analytics", c.progress.GetAnalytics)
	}

	router.NoRoute(func(ctx *gin.Context) {
		util.NotFound(ctx, "Route not found")
	})
}

func (a *App) registerAssessmentRoutes(api *gin.RouterGroup, c *controllers) {
	assessments := api.Group("/assessments")
	{
		assessments.POST("", c.assessment.Generate)
		assessments.GET("/:id", c.assessment.Get)
		assessments.POST("/:id/evaluate", c.assessment.Evaluate)
		assessments.GET("/:id/result", c.assessment.GetResult)
	}
}

func (a *App) registerUserRoutes(api *gin.RouterGroup, c *controllers) {
	users := api.Group("/users")
	{
		users.POST("", c.progress.InitializeUser)
		users.GET("/:id/progress", c.progress.GetProgress)
		users.POST("/:id/topics", c.progress.CompleteTopic)
		users.POST("/:id/scores", c.progress.RecordScore)
		users.POST("/:id/certificates", c.progress.AwardCertificate)
		users.GET("/:id/achievements", c.achievement.GetUserAchievements)
		users.POST("/:id/badges", c.achievement.AwardBadge)
	}
}

func (a *App) registerSkillRoutes(api *gin.RouterGroup, c *controllers) {
	skills := api.Group("/skills")
	{
		skills.POST("/match", c.skill.Match)
		skills.POST("/recommend", c.skill.Recommend)
		skills.POST("/careers", c.skill.Careers)
	}
}
