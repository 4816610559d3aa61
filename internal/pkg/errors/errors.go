package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для синтаксически некорректного ввода (битый JSON, нечисловой ID).
	ErrBadRequest = errors.New("bad request")

	// ErrValidation используется для ошибок валидации входных данных
	// (запрос корректен синтаксически, но не проходит проверку полей).
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable используется, когда хранилище не смогло выполнить вставку или удаление.
	ErrUnprocessable = errors.New("unprocessable entity")
)
