package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"learntrack_backend/docs"
	"learntrack_backend/internal/config"
	"learntrack_backend/internal/middleware"
	"learntrack_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	router.GET("/api/health", c.health.Check)
	router.POST("/api/auth/register", c.auth.Register)
	router.POST("/api/auth/login", c.auth.Login)
	router.POST("/api/auth/google", c.auth.GoogleLogin)

	// Everything else requires a valid token. Per-user routes carry the
	// user id in the path; handlers reject ids that don't match the token.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		// Profiles
		api.GET("/users/:userId", c.user.GetUser)
		api.PATCH("/users/:userId", c.user.UpdateProfile)
		api.POST("/users/:userId/avatar", c.user.UploadAvatar)

		// Courses and topics
		api.GET("/courses", c.course.GetCourses)
		api.GET("/courses/:courseId", c.course.GetCourse)
		api.GET("/courses/:courseId/topics", c.course.GetTopics)
		api.POST("/courses/:courseId/topics", c.course.CreateTopic)
		api.GET("/courses/:courseId/flowchart", c.course.GetFlowchart)
		api.GET("/topics/:topicId", c.course.GetTopic)
		api.GET("/topics/:topicId/resources", c.course.GetResources)

		// Community notes
		api.GET("/topics/:topicId/notes", c.note.GetNotes)
		api.POST("/topics/:topicId/notes", c.note.CreateNote)
		api.POST("/notes/:noteId/vote", c.note.Vote)

		// Progress and streaks
		api.GET("/users/:userId/progress/:topicId", c.progress.GetTopicProgress)
		api.POST("/users/:userId/progress", c.progress.MarkTopicProgress)
		api.GET("/users/:userId/streak", c.progress.GetStreak)
		api.GET("/users/:userId/completed-topics", c.progress.GetCompletedTopics)
		api.GET("/users/:userId/in-progress-courses", c.progress.GetInProgressCourses)

		// Quizzes
		api.GET("/topics/:topicId/quizzes", c.quiz.GetQuizzes)
		api.POST("/topics/:topicId/generate-quiz", c.quiz.GenerateQuiz)
		api.GET("/quizzes/:quizId", c.quiz.GetQuiz)
		api.POST("/quizzes/:quizId/attempt", c.quiz.SubmitAttempt)
		api.GET("/users/:userId/quiz-attempts", c.quiz.GetAttempts)

		// Gamification
		api.GET("/achievements", c.gamification.GetAchievements)
		api.GET("/users/:userId/achievements", c.gamification.GetUserAchievements)
		api.GET("/users/:userId/points", c.gamification.GetUserPoints)
		api.GET("/leaderboard", c.gamification.GetLeaderboard)

		// Pomodoro and tasks
		api.POST("/users/:userId/pomodoro-sessions", c.pomodoro.RecordSession)
		api.GET("/users/:userId/pomodoro-sessions", c.pomodoro.GetSessions)
		api.GET("/users/:userId/tasks", c.task.GetTasks)
		api.POST("/users/:userId/tasks", c.task.CreateTask)
		api.PATCH("/tasks/:taskId", c.task.UpdateTask)
		api.DELETE("/tasks/:taskId", c.task.DeleteTask)
	}
}
