package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/handler/dto"
	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
	"github.com/trivialab/trivia-api/internal/pkg/paging"
	"github.com/trivialab/trivia-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	log             logrus.FieldLogger
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, log logrus.FieldLogger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		log:             log.WithField("component", "question_handler"),
	}
}

// ListQuestions возвращает страницу всех вопросов вместе со списком категорий
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := paging.ParsePage(c.Query("page"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	result, err := h.questionService.ListPage(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		QuestionPageResponse: newQuestionPageResponse(result.QuestionPage),
		Categories:           dto.NewCategoryResponses(result.Categories),
		CurrentCategory:      nil,
	})
}

// GetQuestion возвращает вопрос по ID
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	question, err := h.questionService.Get(c.Request.Context(), questionID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": dto.NewQuestionResponse(question),
	})
}

// DeleteQuestion удаляет вопрос
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.Delete(c.Request.Context(), questionID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedQuestionResponse{
		Success: true,
		Deleted: questionID,
		Message: fmt.Sprintf("Question %d deleted", questionID),
	})
}

// PostQuestion выполняет поиск, если в теле есть searchTerm, иначе создает вопрос
func (h *QuestionHandler) PostQuestion(c *gin.Context) {
	var req questionPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Debug("Invalid question request body")
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	page, err := paging.ParsePage(c.Query("page"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if req.SearchTerm != nil {
		h.searchQuestions(c, *req.SearchTerm, page)
		return
	}
	h.createQuestion(c, req, page)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string, page int) {
	result, err := h.questionService.Search(c.Request.Context(), term, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, newQuestionPageResponse(*result))
}

func (h *QuestionHandler) createQuestion(c *gin.Context, req questionPostRequest, page int) {
	if req.Category < 0 {
		respondError(c, h.log, fmt.Errorf("%w: category must not be negative", apperrors.ErrValidation))
		return
	}

	created, err := h.questionService.Create(c.Request.Context(), service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: int(req.Difficulty),
		CategoryID: uint(req.Category),
	}, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedQuestionResponse{
		QuestionPageResponse: newQuestionPageResponse(created.QuestionPage),
		Created:              created.ID,
		Categories:           dto.NewCategoryResponses(created.Categories),
	})
}

// ExportQuestions выгружает все вопросы в CSV или XLSX
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := h.questionService.Export(c.Request.Context(), format, &buf); err != nil {
		respondError(c, h.log, err)
		return
	}

	filename := fmt.Sprintf("questions_%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
