package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/trivialab/trivia-api/internal/domain/entity"
	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
	rediscache "github.com/trivialab/trivia-api/internal/repository/redis"
	"github.com/trivialab/trivia-api/internal/service"
	"github.com/trivialab/trivia-api/internal/service/quizplay"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================================
// In-memory репозитории: обработчики тестируются с настоящими сервисами
// ============================================================================

type memQuestionRepo struct {
	mu        sync.Mutex
	questions []entity.Question
	nextID    uint
	failWith  error
}

func newMemQuestionRepo(questions []entity.Question) *memQuestionRepo {
	repo := &memQuestionRepo{questions: questions, nextID: 1}
	for _, q := range questions {
		if q.ID >= repo.nextID {
			repo.nextID = q.ID + 1
		}
	}
	return repo
}

func (r *memQuestionRepo) filter(keep func(entity.Question) bool) ([]entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]entity.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if keep(q) {
			result = append(result, q)
		}
	}
	return result, nil
}

func (r *memQuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	return r.filter(func(entity.Question) bool { return true })
}

func (r *memQuestionRepo) ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	return r.filter(func(q entity.Question) bool { return q.CategoryID == categoryID })
}

func (r *memQuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q entity.Question) bool { return strings.Contains(strings.ToLower(q.Text), term) })
}

func (r *memQuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	found, err := r.filter(func(q entity.Question) bool { return q.ID == id })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &found[0], nil
}

func (r *memQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

func (r *memQuestionRepo) Delete(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return false, r.failWith
	}
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memCategoryRepo struct {
	categories []entity.Category
}

func (r *memCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	return append([]entity.Category(nil), r.categories...), nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ============================================================================
// Вспомогательные функции
// ============================================================================

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// seedQuestions создаёт 12 вопросов: каждый третий содержит "title",
// категория вопроса i равна i%3+1
func seedQuestions() []entity.Question {
	questions := make([]entity.Question, 0, 12)
	for i := 1; i <= 12; i++ {
		text := fmt.Sprintf("Question %d", i)
		if i%3 == 0 {
			text = fmt.Sprintf("What is the title of book %d?", i)
		}
		questions = append(questions, entity.Question{
			ID:         uint(i),
			Text:       text,
			Answer:     fmt.Sprintf("Answer %d", i),
			Difficulty: 1 + i%5,
			CategoryID: uint(i%3 + 1),
		})
	}
	return questions
}

type testAPI struct {
	router    *gin.Engine
	questions *memQuestionRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := discardLogger()

	questionRepo := newMemQuestionRepo(seedQuestions())
	categoryRepo := &memCategoryRepo{categories: []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}}

	categoryService := service.NewCategoryService(categoryRepo, rediscache.NoopCache{}, time.Minute, log)
	questionService := service.NewQuestionService(questionRepo, categoryService, 10, log)
	quizService := service.NewQuizService(questionRepo, categoryService, quizplay.NewSeededPicker(7, 11), log)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(NoRoute)
	router.NoMethod(NoMethod)
	RegisterRoutes(router, Handlers{
		Category: NewCategoryHandler(categoryService, questionService, log),
		Question: NewQuestionHandler(questionService, log),
		Quiz:     NewQuizHandler(quizService, log),
	}, nil)

	return &testAPI{router: router, questions: questionRepo}
}

// do выполняет запрос; body типа string отправляется как есть
func (api *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// responseIDs извлекает id из массива объектов ответа
func responseIDs(t *testing.T, items interface{}) []uint {
	t.Helper()
	list, ok := items.([]interface{})
	require.True(t, ok, "expected JSON array, got %T", items)
	ids := make([]uint, 0, len(list))
	for _, item := range list {
		obj := item.(map[string]interface{})
		ids = append(ids, uint(obj["id"].(float64)))
	}
	return ids
}

func requireErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := parseJSONResponse(t, w)
	require.Equal(t, false, resp["success"])
	require.Equal(t, float64(status), resp["error"])
	require.Equal(t, message, resp["message"])
}

var errStoreDown = errors.New("connection reset by peer")
