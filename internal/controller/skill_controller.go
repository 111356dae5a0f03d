package controller

import (
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{SkillService: skillService}
}

type SkillsRequest struct {
	Skills []string `json:"skills" binding:"required"`
}

type RecommendPathRequest struct {
	Goal   string   `json:"goal" binding:"required"`
	Skills []string `json:"skills"`
}

// @Summary Match skills to a specialist track
// @Tags Skills
// @Accept json
// @Produce json
// @Param body body SkillsRequest true "Skills"
// @Success 200 {object} map[string]interface{}
// @Router /api/skills/match [post]
func (c *SkillController) Match(ctx *gin.Context) {
	var req SkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	track, ok := c.SkillService.MatchToTrack(req.Skills)
	if !ok {
		util.Success(ctx, gin.H{"matched": false, "track": nil})
		return
	}
	util.Success(ctx, gin.H{"matched": true, "track": track})
}

// @Summary Recommend a learning path
// @Tags Skills
// @Accept json
// @Produce json
// @Param body body RecommendPathRequest true "Goal and current skills"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/skills/recommend [post]
func (c *SkillController) Recommend(ctx *gin.Context) {
	var req RecommendPathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, ok := c.SkillService.RecommendPath(req.Goal, req.Skills)
	if !ok {
		util.HandleError(ctx, util.ErrPathNotFound)
		return
	}
	util.Success(ctx, gin.H{"data": rec})
}

// @Summary Suggest career paths
// @Tags Skills
// @Accept json
// @Produce json
// @Param body body SkillsRequest true "Skills"
// @Success 200 {object} map[string]interface{}
// @Router /api/skills/careers [post]
func (c *SkillController) Careers(ctx *gin.Context) {
	var req SkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"data": c.SkillService.SuggestCareerPaths(req.Skills)})
}
