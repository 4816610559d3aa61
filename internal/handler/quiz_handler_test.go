package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuestion_ReturnsLastUnseen(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		"quiz_category":      0,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(12), question["id"])
}

func TestNextQuestion_CategoryFormats(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"number", `{"previous_questions":[1,4,7],"quiz_category":2}`},
		{"numeric string", `{"previous_questions":[1,4,7],"quiz_category":"2"}`},
		{"object", `{"previous_questions":[1,4,7],"quiz_category":{"id":2,"type":"Art"}}`},
		{"object with string id", `{"previous_questions":[1,4,7],"quiz_category":{"id":"2","type":"Art"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			w := api.do(http.MethodPost, "/quizzes", tt.body)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			question := parseJSONResponse(t, w)["question"].(map[string]interface{})
			assert.Equal(t, float64(10), question["id"], "Единственный незаданный вопрос категории 2")
			assert.Equal(t, float64(2), question["category"])
		})
	}
}

func TestNextQuestion_AllCategoriesObject(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/quizzes", `{"previous_questions":[],"quiz_category":{"type":"click","id":0}}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	question := parseJSONResponse(t, w)["question"].(map[string]interface{})
	assert.NotZero(t, question["id"])
}

func TestNextQuestion_NeverRepeats(t *testing.T) {
	api := newTestAPI(t)
	served := []uint{}

	for i := 0; i < 12; i++ {
		w := api.do(http.MethodPost, "/quizzes", map[string]interface{}{
			"previous_questions": served,
			"quiz_category":      0,
		})
		require.Equal(t, http.StatusOK, w.Code)
		question := parseJSONResponse(t, w)["question"].(map[string]interface{})
		id := uint(question["id"].(float64))
		require.NotContains(t, served, id)
		served = append(served, id)
	}

	w := api.do(http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": served,
		"quiz_category":      0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.NotContains(t, resp, "question", "Вопросы закончились")
}

func TestNextQuestion_MissingFieldsMeanNewGameInAllCategories(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/quizzes", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, parseJSONResponse(t, w), "question")
}

func TestNextQuestion_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"malformed json", `{"previous_questions": [1,`, http.StatusBadRequest, "bad request"},
		{"ids not numbers", `{"previous_questions": ["a"]}`, http.StatusBadRequest, "bad request"},
		{"bad category string", `{"quiz_category": "science"}`, http.StatusBadRequest, "bad request"},
		{"negative category", `{"quiz_category": -1}`, http.StatusBadRequest, "bad request"},
		{"unknown category", `{"previous_questions": [], "quiz_category": 77}`, http.StatusNotFound, "resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			requireErrorEnvelope(t, api.do(http.MethodPost, "/quizzes", tt.body), tt.wantStatus, tt.wantMsg)
		})
	}
}
