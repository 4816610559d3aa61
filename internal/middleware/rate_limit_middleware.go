package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/config"
	"github.com/trivialab/trivia-api/internal/handler/dto"
)

const rateLimitRedisTimeout = 2 * time.Second

// RateLimitConfig содержит настройки rate limiting
type RateLimitConfig struct {
	// MaxRequests — максимальное количество запросов за Window
	MaxRequests int
	// Window — временное окно для подсчёта запросов
	Window time.Duration
	// KeyPrefix — префикс для ключей в Redis
	KeyPrefix string
}

// WriteRateLimitConfig строит лимит для POST /questions и POST /quizzes из конфигурации
func WriteRateLimitConfig(cfg config.RateLimitConfig) RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: cfg.MaxRequests,
		Window:      time.Duration(cfg.WindowSec) * time.Second,
		KeyPrefix:   "rl:write",
	}
}

// RateLimiter создаёт middleware для rate limiting на основе Redis
type RateLimiter struct {
	redisClient redis.UniversalClient
	log         logrus.FieldLogger
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(redisClient redis.UniversalClient, log logrus.FieldLogger) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		log:         log.WithField("component", "rate_limiter"),
	}
}

// rateLimitKey формирует ключ счётчика из IP и шаблона маршрута
func rateLimitKey(cfg RateLimitConfig, c *gin.Context) string {
	path := c.FullPath() // шаблон маршрута, например "/questions"
	if path == "" {
		path = c.Request.URL.Path
	}
	return fmt.Sprintf("%s:%s:%s:%s", cfg.KeyPrefix, c.ClientIP(), c.Request.Method, path)
}

// Limit возвращает Gin middleware с заданной конфигурацией.
// При недоступности Redis запрос пропускается (fail-open).
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(cfg, c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitRedisTimeout)
		defer cancel()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			rl.log.WithError(err).WithField("key", key).Warn("Redis error, allowing request (fail-open)")
			c.Next()
			return
		}

		// Первый запрос в окне устанавливает TTL
		if count == 1 {
			if err := rl.redisClient.Expire(ctx, key, cfg.Window).Err(); err != nil {
				rl.log.WithError(err).WithField("key", key).Warn("Failed to set rate limit TTL")
			}
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		ttl, _ := rl.redisClient.TTL(ctx, key).Result()
		retryAfter := int(ttl.Seconds())
		if retryAfter < 0 {
			retryAfter = int(cfg.Window.Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(retryAfter))

		if int(count) > cfg.MaxRequests {
			rl.log.WithFields(logrus.Fields{
				"ip":    c.ClientIP(),
				"path":  c.FullPath(),
				"count": count,
				"limit": cfg.MaxRequests,
			}).Warn("Rate limit exceeded")

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(http.StatusTooManyRequests))
			return
		}

		c.Next()
	}
}
