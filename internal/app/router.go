package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"learnpath_backend/docs"
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/middleware"
	"learnpath_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/auth/signup", c.auth.Signup)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/auth/leaderboard", c.auth.Leaderboard)

		public.GET("/courses", c.course.List)
		public.GET("/courses/:id", c.course.Get)

		// Sandbox queries run against the read-only sample database, so
		// no account is needed to practice SQL.
		public.POST("/sql/execute", c.sandbox.Execute)
		public.POST("/sql/verify", c.sandbox.Verify)
		public.GET("/sql/schema", c.sandbox.Schema)
		public.GET("/sql/sample/:table", c.sandbox.Sample)
	}

	// Authorized routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/verify", c.auth.Verify)
		authGroup.POST("/auth/complete-quiz", c.auth.CompleteQuiz)
		authGroup.POST("/auth/vark-submit", c.auth.SubmitVark)

		authGroup.GET("/user/profile", c.user.Profile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)
		authGroup.GET("/user/content", c.user.Content)
		authGroup.GET("/user/content-prioritized", c.user.PrioritizedContent)
		authGroup.GET("/user/insights", c.user.Insights)
		authGroup.GET("/user/question-stats", c.user.QuestionStats)
		authGroup.GET("/user/weak-areas", c.user.WeakAreas)
		authGroup.POST("/user/weak-areas/:id/review", c.user.ReviewWeakArea)

		authGroup.GET("/progress", c.progress.Get)
		authGroup.GET("/progress/theta", c.progress.Placement)
		authGroup.POST("/progress/theta", c.progress.SubmitPlacement)
		authGroup.POST("/progress/complete/:nodeId", c.progress.CompleteNode)

		authGroup.GET("/quests", c.quest.List)
		authGroup.PUT("/quests/:id", c.quest.UpdateProgress)

		authGroup.POST("/tutor/ask", c.tutor.Ask)
		authGroup.POST("/tutor/feedback", c.tutor.Feedback)
	}
}
