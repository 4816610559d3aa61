package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем.
// GetJSON возвращает apperrors.ErrNotFound при промахе.
type CacheRepository interface {
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	Ping(ctx context.Context) error
}
