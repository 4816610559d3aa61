package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/domain/entity"
	"github.com/trivialab/trivia-api/internal/domain/repository"
	"github.com/trivialab/trivia-api/internal/service/quizplay"
)

// NextQuestionInput — запрос следующего вопроса игры.
// CategoryID == 0 означает все категории.
type NextQuestionInput struct {
	PreviousQuestions []uint
	CategoryID        uint
}

// QuizService выдаёт вопросы для игры. Состояние игры не хранится на сервере.
type QuizService struct {
	questionRepo repository.QuestionRepository
	categories   *CategoryService
	picker       *quizplay.Picker
	log          logrus.FieldLogger
}

// NewQuizService создает новый сервис игры
func NewQuizService(
	questionRepo repository.QuestionRepository,
	categories *CategoryService,
	picker *quizplay.Picker,
	log logrus.FieldLogger,
) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		categories:   categories,
		picker:       picker,
		log:          log.WithField("component", "quiz_service"),
	}
}

// NextQuestion возвращает случайный ещё не заданный вопрос.
// (nil, nil) означает, что вопросы закончились: это нормальный исход игры, а не ошибка.
func (s *QuizService) NextQuestion(ctx context.Context, input NextQuestionInput) (*entity.Question, error) {
	candidates, err := s.candidates(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	question, ok := s.picker.PickUnseen(candidates, input.PreviousQuestions)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"category":   input.CategoryID,
			"candidates": len(candidates),
			"served":     len(input.PreviousQuestions),
		}).Debug("No unseen questions left")
		return nil, nil
	}

	return question, nil
}

func (s *QuizService) candidates(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	if categoryID == 0 {
		questions, err := s.questionRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
		return questions, nil
	}

	if _, err := s.categories.Get(ctx, categoryID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	return questions, nil
}
