package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/trivialab/trivia-api/internal/domain/entity"
)

// ExportFormat — формат выгрузки вопросов
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat разбирает формат выгрузки; пустая строка означает CSV
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportXLSX:
		return ExportXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, raw)
	}
}

// ContentType возвращает MIME-тип файла выгрузки
func (f ExportFormat) ContentType() string {
	if f == ExportXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

var exportHeaders = []string{"ID", "Question", "Answer", "Difficulty", "Category ID", "Category"}

// Export записывает все вопросы в w в указанном формате
func (s *QuestionService) Export(ctx context.Context, format ExportFormat, w io.Writer) error {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list questions for export: %w", err)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return err
	}
	categoryNames := make(map[uint]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Type
	}

	switch format {
	case ExportXLSX:
		return writeQuestionsXLSX(w, questions, categoryNames)
	case ExportCSV:
		return writeQuestionsCSV(w, questions, categoryNames)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}
}

func writeQuestionsCSV(w io.Writer, questions []entity.Question, categoryNames map[uint]string) error {
	// BOM для корректного отображения UTF-8 в Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, q := range questions {
		record := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			strconv.Itoa(q.Difficulty),
			strconv.FormatUint(uint64(q.CategoryID), 10),
			categoryNames[q.CategoryID],
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeQuestionsXLSX(w io.Writer, questions []entity.Question, categoryNames map[uint]string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, q := range questions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			q.ID,
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			q.Difficulty,
			q.CategoryID,
			categoryNames[q.CategoryID],
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
