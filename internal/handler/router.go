package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/trivialab/trivia-api/internal/middleware"
)

// Handlers объединяет обработчики API
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
}

// RegisterRoutes регистрирует маршруты API в группе r.
// writeLimit применяется к POST /questions и POST /quizzes; nil — без ограничения.
func RegisterRoutes(r gin.IRouter, h Handlers, writeLimit gin.HandlerFunc) {
	limited := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if writeLimit == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{writeLimit}, handlers...)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", h.Category.ListCategories)
		categories.GET("/:id", middleware.ExtractUintParam("id", "categoryID"), h.Category.GetCategory)
		categories.GET("/:id/questions", middleware.ExtractUintParam("id", "categoryID"), h.Category.ListCategoryQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", h.Question.ListQuestions)
		questions.POST("", limited(h.Question.PostQuestion)...)
		questions.GET("/export", h.Question.ExportQuestions)
		questions.GET("/:id", middleware.ExtractUintParam("id", "questionID"), h.Question.GetQuestion)
		questions.DELETE("/:id", middleware.ExtractUintParam("id", "questionID"), h.Question.DeleteQuestion)
	}

	r.POST("/quizzes", limited(h.Quiz.NextQuestion)...)
}
