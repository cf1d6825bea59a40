package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/Alex3925/company-suggestion-box/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorTestRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", handler)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, types.ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorHandler_ValidationErrorKeepsReason(t *testing.T) {
	r := errorTestRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.ValidationFailed("Message too short.", "trimmed length 2"))
	})

	w, body := doGet(t, r, "/boom")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.OK)
	assert.Equal(t, "Message too short.", body.Error)
	// Internal detail stays server-side.
	assert.NotContains(t, w.Body.String(), "trimmed length")
}

func TestErrorHandler_DatabaseErrorIsGeneric(t *testing.T) {
	r := errorTestRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.NewDatabaseError(errors.New("pg: connection refused")))
	})

	w, body := doGet(t, r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error.", body.Error)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	r := errorTestRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("something unexpected"))
	})

	w, body := doGet(t, r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error.", body.Error)
	assert.NotContains(t, w.Body.String(), "something unexpected")
}

func TestErrorHandler_NoErrorsNoInterference(t *testing.T) {
	r := errorTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
