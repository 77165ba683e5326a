package handlers

import (
	"trivia-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the API routes, CORS policy, and the
// uniform 404/405 fallbacks. The swagger route is wired in cmd/server, next
// to the docs import.
func NewRouter(st store.Store) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoRoute(NoRoute)
	r.NoMethod(NoMethod)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	categoryHandler := NewCategoryHandler(st)
	questionHandler := NewQuestionHandler(st)
	quizHandler := NewQuizHandler(st)

	api := r.Group("/api")
	{
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id/questions", categoryHandler.ListQuestionsByCategory)
		api.GET("/questions", questionHandler.ListQuestions)
		api.POST("/questions", questionHandler.SearchOrCreate)
		api.DELETE("/questions/:id", questionHandler.DeleteQuestion)
		api.POST("/quizzes", quizHandler.Play)
	}

	return r
}
