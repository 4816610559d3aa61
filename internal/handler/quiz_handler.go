package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/handler/dto"
	"github.com/trivialab/trivia-api/internal/service"
)

// QuizHandler обрабатывает запросы игры
type QuizHandler struct {
	quizService *service.QuizService
	log         logrus.FieldLogger
}

// NewQuizHandler создает новый обработчик игры
func NewQuizHandler(quizService *service.QuizService, log logrus.FieldLogger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		log:         log.WithField("component", "quiz_handler"),
	}
}

// NextQuestion возвращает случайный вопрос, которого нет в previous_questions.
// Когда вопросы закончились, отвечает {"success": true} без поля question.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Debug("Invalid quiz request body")
		abortWithStatus(c, http.StatusBadRequest)
		return
	}
	if req.QuizCategory.ID < 0 {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), service.NextQuestionInput{
		PreviousQuestions: req.PreviousQuestions,
		CategoryID:        uint(req.QuizCategory.ID),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizQuestionResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
