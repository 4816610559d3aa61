package service

import (
	"fmt"

	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
)

// Ошибки сервисов, специфичные для каталога вопросов
var (
	// ErrPageNotFound означает, что запрошенная страница начинается за концом выборки
	ErrPageNotFound = fmt.Errorf("requested page does not exist: %w", apperrors.ErrNotFound)
	// ErrCategoryNotFound означает, что категории с таким ID нет
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	// ErrQuestionNotFound означает, что вопроса с таким ID нет
	ErrQuestionNotFound = fmt.Errorf("question not found: %w", apperrors.ErrNotFound)
	// ErrUnsupportedExportFormat возвращается для неизвестного формата выгрузки
	ErrUnsupportedExportFormat = fmt.Errorf("unsupported export format: %w", apperrors.ErrBadRequest)
)
