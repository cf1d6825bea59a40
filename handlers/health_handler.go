package handlers

import (
	"net/http"
	"time"

	"github.com/Alex3925/company-suggestion-box/types"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves the unconditional liveness endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary      Health check
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
