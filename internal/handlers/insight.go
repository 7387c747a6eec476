package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/skillpath-backend/internal/aioutput"
	"github.com/skillpath/skillpath-backend/internal/services"
)

type InsightHandler struct {
	insightService services.InsightService
}

func NewInsightHandler(insightService services.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GET /api/career-insights/my-insight?role=...
// Serves cached data only; never triggers generation.
func (ih *InsightHandler) GetMyInsight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	record, err := ih.insightService.GetInsight(c.Request.Context(), userID, c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	// A null body tells the frontend to show the generate button.
	c.JSON(http.StatusOK, record)
}

// POST /api/career-insights/generate
func (ih *InsightHandler) GenerateInsight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record, err := ih.insightService.GenerateInsight(c.Request.Context(), userID, req)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// respondGenerationError maps the pipeline's error taxonomy onto HTTP
// statuses shared by the insight and roadmap generate endpoints.
func respondGenerationError(c *gin.Context, err error) {
	var extErr *aioutput.ExtractionError
	var vErr *aioutput.ValidationError
	switch {
	case errors.Is(err, services.ErrAIUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service unavailable. Please try again later."})
	case errors.As(err, &extErr), errors.As(err, &vErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI returned unusable output. Please try again."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
