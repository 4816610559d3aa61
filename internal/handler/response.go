package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/handler/dto"
	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
	"github.com/trivialab/trivia-api/internal/pkg/paging"
)

// abortWithStatus прерывает запрос ответом в едином формате ошибки
func abortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

// statusForError сопоставляет ошибку приложения HTTP-статусу
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, paging.ErrInvalidPage),
		errors.Is(err, paging.ErrInvalidPageSize):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError отправляет ошибку клиенту. Ошибки 5xx и 422 логируются с деталями,
// клиент получает только код и короткое сообщение.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	status := statusForError(err)
	entry := log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"status": status,
	})
	switch {
	case status >= http.StatusInternalServerError:
		entry.Error("Request failed")
	case status == http.StatusUnprocessableEntity:
		entry.Warn("Request rejected")
	default:
		entry.Debug("Request rejected")
	}
	abortWithStatus(c, status)
}

// NoRoute отвечает 404 на неизвестные маршруты
func NoRoute(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

// NoMethod отвечает 405 на неподдерживаемые методы
func NoMethod(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}
