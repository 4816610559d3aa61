package dto

import (
	"net/http"

	"github.com/trivialab/trivia-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryResponse представляет категорию в формате для ответа клиенту
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// CategoryListResponse — ответ GET /categories
type CategoryListResponse struct {
	Success         bool               `json:"success"`
	Categories      []CategoryResponse `json:"categories"`
	TotalCategories int                `json:"total_categories"`
}

// QuestionPageResponse — общие поля постраничных ответов
type QuestionPageResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	CurrentPage    int                `json:"current_page"`
	TotalPages     int                `json:"total_pages"`
}

// QuestionListResponse — ответ GET /questions
type QuestionListResponse struct {
	QuestionPageResponse
	Categories      []CategoryResponse `json:"categories"`
	CurrentCategory *CategoryResponse  `json:"current_category"`
}

// CategoryQuestionsResponse — ответ GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	QuestionPageResponse
	CurrentCategory *CategoryResponse `json:"current_category"`
}

// CreatedQuestionResponse — ответ на создание вопроса
type CreatedQuestionResponse struct {
	QuestionPageResponse
	Created    uint               `json:"created"`
	Categories []CategoryResponse `json:"categories"`
}

// DeletedQuestionResponse — ответ на удаление вопроса
type DeletedQuestionResponse struct {
	Success bool   `json:"success"`
	Deleted uint   `json:"deleted"`
	Message string `json:"message"`
}

// QuizQuestionResponse — ответ POST /quizzes. Question == nil, когда вопросы закончились.
type QuizQuestionResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question,omitempty"`
}

// ErrorResponse — единый формат ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

// NewErrorResponse создает тело ошибки для HTTP-статуса
func NewErrorResponse(status int) ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return ErrorResponse{Success: false, Error: status, Message: message}
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses создает список DTO вопросов; пустой список сериализуется как []
func NewQuestionResponses(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, *NewQuestionResponse(&questions[i]))
	}
	return result
}

// NewCategoryResponse создает DTO для категории
func NewCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Type: c.Type}
}

// NewCategoryResponses создает список DTO категорий
func NewCategoryResponses(categories []entity.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryResponse{ID: c.ID, Type: c.Type})
	}
	return result
}
