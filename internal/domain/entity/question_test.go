package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
)

func TestQuestion_Validate_AllFieldsPresent(t *testing.T) {
	// Arrange
	question := &Question{
		Text:       "Which planet is closest to the sun?",
		Answer:     "Mercury",
		Difficulty: 2,
		CategoryID: 1,
	}

	// Act & Assert
	assert.NoError(t, question.Validate())
}

func TestQuestion_Validate_MissingFields(t *testing.T) {
	testCases := []struct {
		name     string
		question Question
		field    string
	}{
		{"без текста", Question{Answer: "A", Difficulty: 1, CategoryID: 1}, "question"},
		{"текст из пробелов", Question{Text: "   ", Answer: "A", Difficulty: 1, CategoryID: 1}, "question"},
		{"без ответа", Question{Text: "Q", Difficulty: 1, CategoryID: 1}, "answer"},
		{"без сложности", Question{Text: "Q", Answer: "A", CategoryID: 1}, "difficulty"},
		{"без категории", Question{Text: "Q", Answer: "A", Difficulty: 1}, "category"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.question.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestQuestion_Validate_DifficultyOutOfRange(t *testing.T) {
	for _, difficulty := range []int{-1, 6, 100} {
		question := &Question{Text: "Q", Answer: "A", Difficulty: difficulty, CategoryID: 1}
		err := question.Validate()
		assert.ErrorIs(t, err, apperrors.ErrValidation, "difficulty=%d должна быть отклонена", difficulty)
	}
}

func TestQuestion_Normalize(t *testing.T) {
	question := &Question{Text: "  What?  ", Answer: "\tThat\n"}

	question.Normalize()

	assert.Equal(t, "What?", question.Text)
	assert.Equal(t, "That", question.Answer)
}

func TestQuestion_TableName(t *testing.T) {
	assert.Equal(t, "questions", Question{}.TableName(), "TableName должен возвращать 'questions'")
	assert.Equal(t, "categories", Category{}.TableName(), "TableName должен возвращать 'categories'")
}
