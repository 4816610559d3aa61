package redis

import (
	"context"
	"time"

	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
)

// NoopCache используется, когда Redis не настроен: ничего не хранит, каждое чтение — промах
type NoopCache struct{}

func (NoopCache) SetJSON(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCache) GetJSON(context.Context, string, interface{}) error { return apperrors.ErrNotFound }

func (NoopCache) Ping(context.Context) error { return nil }
