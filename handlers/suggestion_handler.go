package handlers

import (
	"net/http"

	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/Alex3925/company-suggestion-box/types"
	"github.com/gin-gonic/gin"
)

// SuggestionHandler handles suggestion submission and listing endpoints.
type SuggestionHandler struct {
	service SuggestionService
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(service SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

// SubmitSuggestion godoc
// @Summary      Submit a suggestion
// @Description  Submit a feedback entry as JSON or form data
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      types.SuggestionCreate  true  "Suggestion payload"
// @Success      201   {object}  types.SubmitResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/feedback [post]
func (h *SuggestionHandler) SubmitSuggestion(c *gin.Context) {
	var req types.SuggestionCreate
	if err := c.ShouldBind(&req); err != nil {
		// A body that does not bind (wrong types, malformed encoding) cannot
		// carry the required fields.
		_ = c.Error(apperrors.ValidationFailed("Missing required fields.", err.Error()))
		return
	}

	id, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.SubmitResponse{OK: true, ID: id})
}

// ListSuggestions godoc
// @Summary      List recent suggestions
// @Description  Returns up to 1000 suggestions, newest first
// @Tags         feedback
// @Produce      json
// @Success      200  {object}  types.ListResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/suggestions [get]
func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	suggestions, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}
	c.JSON(http.StatusOK, types.ListResponse{OK: true, Items: suggestions})
}
