package entity

import (
	"fmt"
	"strings"

	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
)

// Границы сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины.
// CategoryID ссылается на Category, но внешний ключ не объявлен: вопрос
// с несуществующей категорией допустим и не отслеживается.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Validate проверяет, что заданы все четыре поля, обязательные при создании
func (q *Question) Validate() error {
	var missing []string
	if strings.TrimSpace(q.Text) == "" {
		missing = append(missing, "question")
	}
	if strings.TrimSpace(q.Answer) == "" {
		missing = append(missing, "answer")
	}
	if q.Difficulty == 0 {
		missing = append(missing, "difficulty")
	}
	if q.CategoryID == 0 {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required fields not provided: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}

	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty must be between %d and %d", apperrors.ErrValidation, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// Normalize обрезает пробелы по краям текста вопроса и ответа
func (q *Question) Normalize() {
	q.Text = strings.TrimSpace(q.Text)
	q.Answer = strings.TrimSpace(q.Answer)
}
