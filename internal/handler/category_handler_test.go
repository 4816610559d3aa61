package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/categories", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(3), resp["total_categories"])
	assert.Equal(t, []uint{1, 2, 3}, responseIDs(t, resp["categories"]))

	first := resp["categories"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Science", first["type"])
}

func TestGetCategory(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/categories/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	category := resp["category"].(map[string]interface{})
	assert.Equal(t, "Art", category["type"])

	requireErrorEnvelope(t, api.do(http.MethodGet, "/categories/99", nil), http.StatusNotFound, "resource not found")
	requireErrorEnvelope(t, api.do(http.MethodGet, "/categories/art", nil), http.StatusBadRequest, "bad request")
}

func TestListCategoryQuestions(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/categories/2/questions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, []uint{1, 4, 7, 10}, responseIDs(t, resp["questions"]))
	assert.Equal(t, float64(4), resp["total_questions"])
	assert.Equal(t, float64(1), resp["current_page"])
	assert.Equal(t, float64(1), resp["total_pages"])
	current := resp["current_category"].(map[string]interface{})
	assert.Equal(t, float64(2), current["id"])
	assert.Equal(t, "Art", current["type"])
}

func TestListCategoryQuestions_Errors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"unknown category", "/categories/42/questions", http.StatusNotFound, "resource not found"},
		{"page past end", "/categories/2/questions?page=2", http.StatusNotFound, "resource not found"},
		{"invalid page", "/categories/2/questions?page=first", http.StatusBadRequest, "bad request"},
		{"invalid id", "/categories/x/questions", http.StatusBadRequest, "bad request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireErrorEnvelope(t, api.do(http.MethodGet, tt.path, nil), tt.wantStatus, tt.wantMsg)
		})
	}
}
