package controller

import (
	"strconv"

	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type InitializeUserRequest struct {
	UserID string `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Level  string `json:"level"`
}

type CompleteTopicRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type RecordScoreRequest struct {
	Topic string `json:"topic" binding:"required"`
	Score *int   `json:"score" binding:"required"`
}

type AwardCertificateRequest struct {
	Role  string `json:"role"`
	Level string `json:"level"`
}

// @Summary Initialize user progress
// @Description Re-initializing an existing user resets the record
// @Tags Progress
// @Accept json
// @Produce json
// @Param body body InitializeUserRequest true "User"
// @Success 201 {object} map[string]interface{}
// @Router /api/users [post]
func (c *ProgressController) InitializeUser(ctx *gin.Context) {
	var req InitializeUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.ProgressService.InitializeUser(req.UserID, req.Role, req.Level)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"data": p})
}

// @Summary Get user progress
// @Tags Progress
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/users/{id}/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	p, err := c.ProgressService.GetUserProgress(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"data": p})
}

// @Summary Complete topic
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body CompleteTopicRequest true "Topic"
// @Success 200 {object} map[string]interface{}
// @Router /api/users/{id}/topics [post]
func (c *ProgressController) CompleteTopic(ctx *gin.Context) {
	var req CompleteTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.ProgressService.CompleteTopic(ctx.Param("id"), req.Topic)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"data": p})
}

// @Summary Record assessment score
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body RecordScoreRequest true "Score"
// @Success 200 {object} map[string]interface{}
// @Router /api/users/{id}/scores [post]
func (c *ProgressController) RecordScore(ctx *gin.Context) {
	var req RecordScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.ProgressService.RecordAssessmentScore(ctx.Param("id"), req.Topic, *req.Score)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"data": p})
}

// @Summary Award certificate
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body AwardCertificateRequest false "Role and level, defaulting to the user's"
// @Success 201 {object} map[string]interface{}
// @Router /api/users/{id}/certificates [post]
func (c *ProgressController) AwardCertificate(ctx *gin.Context) {
	var req AwardCertificateRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	cert, err := c.ProgressService.AwardCertificate(ctx.Param("id"), req.Role, req.Level)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"data": cert})
}

// @Summary Leaderboard
// @Tags Progress
// @Produce json
// @Param limit query int false "Entries" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /api/leaderboard [get]
func (c *ProgressController) GetLeaderboard(ctx *gin.Context) {
	limit := service.DefaultLeaderboardSize
	if limitStr := ctx.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			util.BadRequest(ctx, "limit must be an integer")
			return
		}
		limit = l
	}

	util.Success(ctx, gin.H{"data": c.ProgressService.GetLeaderboard(limit)})
}

// @Summary Platform analytics
// @Tags Progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytics [get]
func (c *ProgressController) GetAnalytics(ctx *gin.Context) {
	util.Success(ctx, gin.H{"data": c.ProgressService.GetAnalytics()})
}
