package controller

import (
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
	ProgressService    *service.ProgressService
}

func NewAchievementController(achievementService *service.AchievementService, progressService *service.ProgressService) *AchievementController {
	return &AchievementController{
		AchievementService: achievementService,
		ProgressService:    progressService,
	}
}

type AwardBadgeRequest struct {
	BadgeID   string `json:"badgeId" binding:"required"`
	BadgeName string `json:"badgeName" binding:"required"`
}

// @Summary Get user achievements
// @Description Unknown users have no achievements
// @Tags Achievements
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/users/{id}/achievements [get]
func (c *AchievementController) GetUserAchievements(ctx *gin.Context) {
	util.Success(ctx, gin.H{"data": c.AchievementService.GetUserAchievements(ctx.Param("id"))})
}

// @Summary Award badge
// @Tags Achievements
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body AwardBadgeRequest true "Badge"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/users/{id}/badges [post]
func (c *AchievementController) AwardBadge(ctx *gin.Context) {
	var req AwardBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := ctx.Param("id")
	if _, err := c.ProgressService.GetUserProgress(userID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	awarded := c.AchievementService.AwardBadge(userID, req.BadgeID, req.BadgeName)
	util.Success(ctx, gin.H{"awarded": awarded})
}
