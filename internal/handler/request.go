package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// flexibleInt принимает число или строку с числом: фронтенд отправляет значения полей формы строками
type flexibleInt int

func (n *flexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	var raw json.Number
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		raw = json.Number(s)
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, err := strconv.Atoi(raw.String()); err == nil {
		*n = flexibleInt(v)
		return nil
	}

	// Целое число в записи с дробной частью, например 3.0
	f, err := strconv.ParseFloat(raw.String(), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactFloatInt {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*n = flexibleInt(f)
	return nil
}

// maxExactFloatInt — граница, до которой float64 представляет целые точно
const maxExactFloatInt = 1 << 53

// quizCategory — категория игры: число, строка с числом или объект {"id": .., "type": ..}.
// Ноль означает все категории.
type quizCategory struct {
	ID flexibleInt
}

func (q *quizCategory) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID flexibleInt `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		q.ID = obj.ID
		return nil
	}
	return q.ID.UnmarshalJSON(data)
}

// questionPostRequest — тело POST /questions. Наличие ключа searchTerm означает поиск.
type questionPostRequest struct {
	SearchTerm *string     `json:"searchTerm"`
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Difficulty flexibleInt `json:"difficulty"`
	Category   flexibleInt `json:"category"`
}

// quizRequest — тело POST /quizzes
type quizRequest struct {
	PreviousQuestions []uint       `json:"previous_questions"`
	QuizCategory      quizCategory `json:"quiz_category"`
}
