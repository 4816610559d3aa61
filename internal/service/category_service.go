package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/domain/entity"
	"github.com/trivialab/trivia-api/internal/domain/repository"
	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
)

// CategoriesCacheKey — ключ Redis для списка категорий
const CategoriesCacheKey = "trivia:categories"

// CategoryService предоставляет методы для работы с категориями.
// Категории неизменяемы, поэтому их список кешируется целиком.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	log          logrus.FieldLogger
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	log logrus.FieldLogger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		log:          log.WithField("component", "category_service"),
	}
}

// List возвращает все категории, упорядоченные по ID.
// Ошибки Redis не прерывают запрос: список читается из БД.
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	var cached []entity.Category
	err := s.cacheRepo.GetJSON(ctx, CategoriesCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.log.WithError(err).Warn("Failed to read categories from cache, falling back to database")
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) > 0 {
		if err := s.cacheRepo.SetJSON(ctx, CategoriesCacheKey, categories, s.cacheTTL); err != nil {
			s.log.WithError(err).Warn("Failed to cache categories")
		}
	}
	return categories, nil
}

// Get возвращает категорию по ID
func (s *CategoryService) Get(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return category, nil
}
