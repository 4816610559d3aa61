// Package paging нарезает упорядоченные выборки на страницы фиксированного размера.
//
// Номер страницы начинается с 1. Страница, начало которой лежит за концом выборки,
// считается отсутствующей: Paginate возвращает ok=false, и вызывающий код отвечает 404.
// Пустая, но существующая страница в этой модели невозможна.
package paging

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize используется, когда размер страницы не задан в конфигурации
const DefaultPageSize = 10

var (
	// ErrInvalidPage возвращается для нечислового или неположительного номера страницы
	ErrInvalidPage = errors.New("page must be a positive integer")
	// ErrInvalidPageSize возвращается для неположительного размера страницы
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
)

// Params описывает запрошенную страницу
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Validate проверяет, что номер и размер страницы положительны
func (p Params) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.PageSize < 1 {
		return ErrInvalidPageSize
	}
	return nil
}

// Offset возвращает индекс первой записи страницы. При переполнении возвращает math.MaxInt.
func (p Params) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// Paginate возвращает копию записей [(Page-1)*PageSize, min(Page*PageSize, len(items))).
// ok=false означает, что такой страницы нет (в том числе для пустой выборки
// и для невалидных параметров).
func Paginate[T any](items []T, p Params) (page []T, ok bool) {
	if p.Validate() != nil {
		return nil, false
	}

	// Сравнение через число страниц: (Page-1)*PageSize может переполнить int
	if p.Page-1 >= TotalPages(len(items), p.PageSize) {
		return nil, false
	}

	start := p.Offset()

	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}

	page = make([]T, end-start)
	copy(page, items[start:end])
	return page, true
}

// TotalPages возвращает количество страниц для total записей
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ParsePage разбирает значение query-параметра page. Пустая строка означает первую страницу.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}
