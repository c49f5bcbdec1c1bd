package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/handler"
	"github.com/quizforge/quizforge-backend/internal/middleware"
	"github.com/quizforge/quizforge-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Quiz       *handler.QuizHandler
	Question   *handler.QuestionHandler
	Option     *handler.OptionHandler
	Submission *handler.SubmissionHandler
}

// SetupRouter configures all Gin routes with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response can be traced.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for submissions (30 per minute per IP).
	submitLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Quiz ──────────────────────────────────────────────────────────
	quiz := router.Group("/quiz")
	{
		quiz.POST("", handlers.Quiz.Create)
		quiz.GET("", handlers.Quiz.List)
		quiz.PUT("/:id", handlers.Quiz.Update)
		quiz.DELETE("/:id", handlers.Quiz.Delete)
		quiz.GET("/:id/questions", handlers.Quiz.GetQuestions)
		quiz.GET("/:id/full", handlers.Quiz.GetFull)
		quiz.POST("/:id/questions", handlers.Question.AddQuestions)
		quiz.POST("/:id/submit", submitLimiter.Middleware(), handlers.Submission.Submit)
	}

	// ─── Question ──────────────────────────────────────────────────────
	question := router.Group("/question")
	{
		question.PUT("/:id", handlers.Question.SetCorrectOption)
		question.DELETE("/:id", handlers.Question.Delete)
		question.POST("/:id/options", handlers.Option.Add)
	}

	// ─── Option ────────────────────────────────────────────────────────
	router.DELETE("/option/:id", handlers.Option.Delete)

	return router
}
