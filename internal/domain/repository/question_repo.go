package repository

import (
	"context"

	"github.com/trivialab/trivia-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Все списки упорядочены по ID.
type QuestionRepository interface {
	List(ctx context.Context) ([]entity.Question, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	// Search ищет вопросы, текст которых содержит term (без учёта регистра)
	Search(ctx context.Context, term string) ([]entity.Question, error)
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	// Create сохраняет вопрос и заполняет question.ID
	Create(ctx context.Context, question *entity.Question) error
	// Delete удаляет вопрос; false — записи с таким ID не было
	Delete(ctx context.Context, id uint) (bool, error)
}
