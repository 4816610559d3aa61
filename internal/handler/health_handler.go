package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/domain/repository"
)

const healthCheckTimeout = 2 * time.Second

// DatabasePinger проверяет доступность базы данных (*sql.DB)
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	db    DatabasePinger
	cache repository.CacheRepository
	log   logrus.FieldLogger
}

// NewHealthHandler создает обработчик /healthz
func NewHealthHandler(db DatabasePinger, cache repository.CacheRepository, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, log: log.WithField("component", "health_handler")}
}

// Health проверяет базу данных и кеш
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	database, cache := "ok", "ok"

	if err := h.db.PingContext(ctx); err != nil {
		h.log.WithError(err).Error("Database health check failed")
		database = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		h.log.WithError(err).Error("Cache health check failed")
		cache = "unavailable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"success":  status == http.StatusOK,
		"database": database,
		"cache":    cache,
	})
}
