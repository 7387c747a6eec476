package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/skillpath-backend/internal/services"
)

type WriterHandler struct {
	writerService services.WriterService
}

func NewWriterHandler(writerService services.WriterService) *WriterHandler {
	return &WriterHandler{writerService: writerService}
}

// POST /ai/generate-resume-content
func (wh *WriterHandler) GenerateResumeContent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Industry string `json:"industry"`
		Skills   string `json:"skills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	content, err := wh.writerService.GenerateResumeSummary(c.Request.Context(), userID, req.Industry, req.Skills)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// POST /ai/generate-resume-bullets
func (wh *WriterHandler) GenerateResumeBullets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Accomplishment string `json:"accomplishment"`
		Skills         string `json:"skills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Accomplishment) == "" || strings.TrimSpace(req.Skills) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: accomplishment, skills"})
		return
	}
	bullets, err := wh.writerService.GenerateResumeBullets(c.Request.Context(), userID, req.Accomplishment, req.Skills)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bullets": bullets})
}

// POST /ai/generate-cover-letter
func (wh *WriterHandler) GenerateCoverLetter(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		JobDescription string `json:"jobDescription"`
		UserSkills     string `json:"userSkills"`
		CompanyName    string `json:"companyName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" || strings.TrimSpace(req.UserSkills) == "" || strings.TrimSpace(req.CompanyName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: jobDescription, userSkills, companyName"})
		return
	}
	letter, err := wh.writerService.GenerateCoverLetter(c.Request.Context(), userID, req.JobDescription, req.UserSkills, req.CompanyName)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coverLetter": letter})
}
