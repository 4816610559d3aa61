package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/domain/entity"
	"github.com/trivialab/trivia-api/internal/domain/repository"
	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
	"github.com/trivialab/trivia-api/internal/pkg/paging"
)

// QuestionPage — одна страница вопросов вместе с данными для навигации
type QuestionPage struct {
	Questions  []entity.Question
	Total      int
	Page       int
	TotalPages int
}

// QuestionListing — страница общего списка вопросов со списком категорий
type QuestionListing struct {
	QuestionPage
	Categories []entity.Category
}

// CategoryQuestions — страница вопросов одной категории
type CategoryQuestions struct {
	QuestionPage
	Category *entity.Category
}

// CreatedQuestion — результат создания вопроса: его ID и актуальная страница списка
type CreatedQuestion struct {
	ID uint
	QuestionListing
}

// CreateQuestionInput содержит поля нового вопроса
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Difficulty int
	CategoryID uint
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categories   *CategoryService
	pageSize     int
	log          logrus.FieldLogger
}

// NewQuestionService создает новый сервис вопросов.
// pageSize берётся из конфигурации и одинаков для всех запросов.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categories *CategoryService,
	pageSize int,
	log logrus.FieldLogger,
) *QuestionService {
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}
	return &QuestionService{
		questionRepo: questionRepo,
		categories:   categories,
		pageSize:     pageSize,
		log:          log.WithField("component", "question_service"),
	}
}

// PageSize возвращает размер страницы
func (s *QuestionService) PageSize() int {
	return s.pageSize
}

// ListPage возвращает страницу всех вопросов и список категорий
func (s *QuestionService) ListPage(ctx context.Context, page int) (*QuestionListing, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	result, err := s.paginate(questions, page)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionListing{QuestionPage: result, Categories: categories}, nil
}

// ListByCategory возвращает страницу вопросов категории. Категория должна существовать.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestions, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}

	result, err := s.paginate(questions, page)
	if err != nil {
		return nil, err
	}

	return &CategoryQuestions{QuestionPage: result, Category: category}, nil
}

// Search возвращает страницу вопросов, текст которых содержит term без учёта регистра.
// Пустой term совпадает со всеми вопросами.
func (s *QuestionService) Search(ctx context.Context, term string, page int) (*QuestionPage, error) {
	term = strings.TrimSpace(term)

	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	result, err := s.paginate(questions, page)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Get возвращает вопрос по ID
func (s *QuestionService) Get(ctx context.Context, id uint) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return question, nil
}

// Create проверяет и сохраняет новый вопрос, затем возвращает запрошенную страницу
// общего списка. Если такой страницы нет, возвращается последняя.
func (s *QuestionService) Create(ctx context.Context, input CreateQuestionInput, page int) (*CreatedQuestion, error) {
	question := &entity.Question{
		Text:       input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		CategoryID: input.CategoryID,
	}
	question.Normalize()
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.log.WithError(err).Error("Failed to insert question")
		return nil, fmt.Errorf("%w: failed to insert question: %v", apperrors.ErrUnprocessable, err)
	}
	s.log.WithFields(logrus.Fields{
		"question_id": question.ID,
		"category":    question.CategoryID,
	}).Info("Question created")

	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	if last := paging.TotalPages(len(questions), s.pageSize); page > last && last > 0 {
		page = last
	}
	result, err := s.paginate(questions, page)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return &CreatedQuestion{
		ID:              question.ID,
		QuestionListing: QuestionListing{QuestionPage: result, Categories: categories},
	}, nil
}

// Delete удаляет вопрос. Сбой хранилища возвращается как ErrUnprocessable.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	existed, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("question_id", id).Error("Failed to delete question")
		return fmt.Errorf("%w: failed to delete question %d: %v", apperrors.ErrUnprocessable, id, err)
	}
	if !existed {
		return ErrQuestionNotFound
	}

	s.log.WithField("question_id", id).Info("Question deleted")
	return nil
}

func (s *QuestionService) paginate(questions []entity.Question, page int) (QuestionPage, error) {
	params := paging.Params{Page: page, PageSize: s.pageSize}
	if err := params.Validate(); err != nil {
		return QuestionPage{}, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
	}

	items, ok := paging.Paginate(questions, params)
	if !ok {
		return QuestionPage{}, ErrPageNotFound
	}

	return QuestionPage{
		Questions:  items,
		Total:      len(questions),
		Page:       page,
		TotalPages: paging.TotalPages(len(questions), s.pageSize),
	}, nil
}
