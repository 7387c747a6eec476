package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/skillpath-backend/internal/services"
)

type RoadmapHandler struct {
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

// POST /api/roadmap/generate
func (rh *RoadmapHandler) GenerateRoadmap(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		DesiredRole   string   `json:"desiredRole"`
		MissingSkills []string `json:"missingSkills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	milestones, err := rh.roadmapService.GenerateRoadmap(c.Request.Context(), userID, req.DesiredRole, req.MissingSkills)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}

// GET /api/roadmap/my-roadmap
func (rh *RoadmapHandler) GetMyRoadmap(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	milestones, err := rh.roadmapService.GetRoadmap(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch failed"})
		return
	}
	c.JSON(http.StatusOK, milestones)
}

// POST /api/roadmap/toggle-complete
func (rh *RoadmapHandler) ToggleComplete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		NodeID string `json:"nodeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	completed, err := rh.roadmapService.ToggleMilestone(c.Request.Context(), userID, req.NodeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

// GET /api/roadmap/progress
func (rh *RoadmapHandler) GetProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ids, err := rh.roadmapService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch failed"})
		return
	}
	c.JSON(http.StatusOK, ids)
}

// GET /api/roadmap/progress-summary
func (rh *RoadmapHandler) GetProgressSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summary, err := rh.roadmapService.GetProgressSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch failed"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
