package controller

import (
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Assessments *repository.AssessmentRepository
	Progress    *repository.ProgressRepository
}

func NewHealthController(assessments *repository.AssessmentRepository, progress *repository.ProgressRepository) *HealthController {
	return &HealthController{Assessments: assessments, Progress: progress}
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"assessments": c.Assessments.Count(),
			"users":       c.Progress.Analytics().TotalUsers,
		},
	})
}
