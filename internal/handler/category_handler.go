package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/handler/dto"
	"github.com/trivialab/trivia-api/internal/pkg/paging"
	"github.com/trivialab/trivia-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
	log             logrus.FieldLogger
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
	log logrus.FieldLogger,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		log:             log.WithField("component", "category_handler"),
	}
}

// ListCategories возвращает все категории
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Success:         true,
		Categories:      dto.NewCategoryResponses(categories),
		TotalCategories: len(categories),
	})
}

// GetCategory возвращает категорию по ID
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	category, err := h.categoryService.Get(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": dto.NewCategoryResponse(category),
	})
}

// ListCategoryQuestions возвращает страницу вопросов категории
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	page, err := paging.ParsePage(c.Query("page"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	result, err := h.questionService.ListByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		QuestionPageResponse: newQuestionPageResponse(result.QuestionPage),
		CurrentCategory:      dto.NewCategoryResponse(result.Category),
	})
}

func newQuestionPageResponse(p service.QuestionPage) dto.QuestionPageResponse {
	return dto.QuestionPageResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(p.Questions),
		TotalQuestions: p.Total,
		CurrentPage:    p.Page,
		TotalPages:     p.TotalPages,
	}
}
