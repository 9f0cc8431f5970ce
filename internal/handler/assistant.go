package handler

import (
	"net/http"

	"cityviewer/internal/model"
	"cityviewer/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles the summary, query, and building context routes.
type AssistantHandler struct {
	assistant *service.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Summary handles POST /api/summary. The service degrades to a deterministic
// summary on model failure, so a parsed request always gets a 200.
func (h *AssistantHandler) Summary(c *gin.Context) {
	var req model.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	summary := h.assistant.Summarize(c.Request.Context(), req.BuildingData)
	c.JSON(http.StatusOK, summary)
}

// Query handles POST /api/query.
func (h *AssistantHandler) Query(c *gin.Context) {
	var req model.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.assistant.Answer(c.Request.Context(), req.Query, req.Context)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuildingContext handles POST /api/building-context.
func (h *AssistantHandler) BuildingContext(c *gin.Context) {
	var req model.ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Building name is required"})
		return
	}

	bc := h.assistant.BuildingContext(c.Request.Context(), &req)
	c.JSON(http.StatusOK, bc)
}
