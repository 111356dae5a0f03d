package controller

import (
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List roadmaps
// @Description All roles grouped by area
// @Tags Content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/roadmaps [get]
func (c *ContentController) GetRoadmaps(ctx *gin.Context) {
	idx := c.ContentService.Roadmaps()
	util.Success(ctx, gin.H{
		"totalRoles": idx.TotalRoles,
		"data":       idx.Groups,
	})
}

// @Summary Get roadmap
// @Tags Content
// @Produce json
// @Param role query string true "Role"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/roadmap [get]
func (c *ContentController) GetRoadmap(ctx *gin.Context) {
	role := ctx.Query("role")
	if role == "" {
		util.BadRequest(ctx, "Role parameter required")
		return
	}

	util.Success(ctx, gin.H{
		"role": role,
		"data": c.ContentService.Roadmap(role),
	})
}

// @Summary Get learning path schedule
// @Tags Content
// @Produce json
// @Param role query string false "Role"
// @Param level query string false "Level" default(beginner)
// @Success 200 {object} map[string]interface{}
// @Router /api/learning-path [get]
func (c *ContentController) GetLearningPath(ctx *gin.Context) {
	role := ctx.Query("role")
	level := ctx.DefaultQuery("level", string(model.LevelBeginner))

	util.Success(ctx, gin.H{
		"role":  role,
		"level": level,
		"path":  c.ContentService.LearningPath(level),
	})
}

// @Summary List specialist agents
// @Tags Content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/agents [get]
func (c *ContentController) GetAgents(ctx *gin.Context) {
	util.Success(ctx, gin.H{"agents": c.ContentService.Agents()})
}
