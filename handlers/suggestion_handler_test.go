package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/Alex3925/company-suggestion-box/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitSuggestion_Success(t *testing.T) {
	svc := new(MockSuggestionService)
	svc.On("Submit", mock.Anything, mock.AnythingOfType("types.SuggestionCreate")).
		Return("7c9e6679-7425-40de-944b-e07fc1f90ae7", nil)

	r := newTestEngine()
	r.POST("/api/feedback", NewSuggestionHandler(svc).SubmitSuggestion)

	w := postJSON(t, r, "/api/feedback", gin.H{
		"name":    "Ada",
		"email":   "ada@example.com",
		"type":    "bug",
		"message": "it crashed",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp types.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", resp.ID)
	svc.AssertExpectations(t)
}

func TestSubmitSuggestion_FormEncoded(t *testing.T) {
	svc := new(MockSuggestionService)
	var got types.SuggestionCreate
	svc.On("Submit", mock.Anything, mock.AnythingOfType("types.SuggestionCreate")).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(types.SuggestionCreate)
		}).
		Return("some-id", nil)

	r := newTestEngine()
	r.POST("/api/feedback", NewSuggestionHandler(svc).SubmitSuggestion)

	form := url.Values{}
	form.Set("name", "Ada")
	form.Set("email", "ada@example.com")
	form.Set("type", "feature")
	form.Set("message", "please add dark mode")
	form.Set("impact", "low")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "feature", got.Type)
	assert.Equal(t, "low", got.Impact)
}

func TestSubmitSuggestion_ValidationRejection(t *testing.T) {
	svc := new(MockSuggestionService)
	svc.On("Submit", mock.Anything, mock.Anything).
		Return("", apperrors.ValidationFailed("Missing required fields.", "name must not be blank"))

	r := newTestEngine()
	r.POST("/api/feedback", NewSuggestionHandler(svc).SubmitSuggestion)

	w := postJSON(t, r, "/api/feedback", gin.H{"email": "ada@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Missing required fields.", resp.Error)
}

func TestSubmitSuggestion_NonStringOptionalFieldCoerced(t *testing.T) {
	svc := new(MockSuggestionService)
	var got types.SuggestionCreate
	svc.On("Submit", mock.Anything, mock.AnythingOfType("types.SuggestionCreate")).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(types.SuggestionCreate)
		}).
		Return("7c9e6679-7425-40de-944b-e07fc1f90ae7", nil)

	r := newTestEngine()
	r.POST("/api/feedback", NewSuggestionHandler(svc).SubmitSuggestion)

	// A numeric impact binds as the empty string rather than failing the
	// whole submission.
	w := postJSON(t, r, "/api/feedback", gin.H{
		"name":    "Ada",
		"email":   "ada@example.com",
		"type":    "bug",
		"message": "it crashed",
		"impact":  5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "", got.Impact)
}

func TestSubmitSuggestion_NonStringRequiredFieldReadsAsEmpty(t *testing.T) {
	svc := new(MockSuggestionService)
	var got types.SuggestionCreate
	svc.On("Submit", mock.Anything, mock.AnythingOfType("types.SuggestionCreate")).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(types.SuggestionCreate)
		}).
		Return("", apperrors.ValidationFailed("Missing required fields.", "name must not be blank"))

	r := newTestEngine()
	r.POST("/api/feedback", NewSuggestionHandler(svc).SubmitSuggestion)

	// A numeric name reaches the service as the empty string, so the
	// rejection reason reflects the actually-missing field.
	w := postJSON(t, r, "/api/feedback", gin.H{
		"name":    12345,
		"email":   "ada@example.com",
		"type":    "bug",
		"message": "it crashed",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields.", resp.Error)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestSubmitSuggestion_StorageFailure(t *testing.T) {
	svc := new(MockSuggestionService)
	svc.On("Submit", mock.Anything, mock.Anything).
		Return("", apperrors.NewDatabaseError(assert.AnError))

	r := newTestEngine()
	r.POST("/api/feedback", NewSuggestionHandler(svc).SubmitSuggestion)

	w := postJSON(t, r, "/api/feedback", gin.H{
		"name": "Ada", "email": "ada@example.com", "type": "bug", "message": "it crashed",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Server error.", resp.Error)
}

func TestListSuggestions_Success(t *testing.T) {
	now := time.Now().UTC()
	items := []types.Suggestion{
		{ID: "b", Name: "Bob", Email: "bob@example.com", Type: "bug", Message: "broken", CreatedAt: now},
		{ID: "a", Name: "Ada", Email: "ada@example.com", Type: "idea", Message: "improve", CreatedAt: now.Add(-time.Minute)},
	}

	svc := new(MockSuggestionService)
	svc.On("ListRecent", mock.Anything).Return(items, nil)

	r := newTestEngine()
	r.GET("/api/suggestions", NewSuggestionHandler(svc).ListSuggestions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "b", resp.Items[0].ID)
	assert.Equal(t, "a", resp.Items[1].ID)
}

func TestListSuggestions_EmptyIsArrayNotNull(t *testing.T) {
	svc := new(MockSuggestionService)
	svc.On("ListRecent", mock.Anything).Return([]types.Suggestion(nil), nil)

	r := newTestEngine()
	r.GET("/api/suggestions", NewSuggestionHandler(svc).ListSuggestions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestListSuggestions_StorageFailure(t *testing.T) {
	svc := new(MockSuggestionService)
	svc.On("ListRecent", mock.Anything).Return(nil, apperrors.NewDatabaseError(assert.AnError))

	r := newTestEngine()
	r.GET("/api/suggestions", NewSuggestionHandler(svc).ListSuggestions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error.")
}
