package controller

import (
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

type GenerateAssessmentRequest struct {
	Topic         string `json:"topic" binding:"required"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount" binding:"min=0"`
}

type EvaluateAssessmentRequest struct {
	Answers map[string]string `json:"answers"`
}

// @Summary Generate assessment
// @Tags Assessments
// @Accept json
// @Produce json
// @Param body body GenerateAssessmentRequest true "Assessment parameters"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/assessments [post]
func (c *AssessmentController) Generate(ctx *gin.Context) {
	var req GenerateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AssessmentService.Generate(req.Topic, req.Difficulty, req.QuestionCount)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"data": a})
}

// @Summary Get assessment
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	a, err := c.AssessmentService.Get(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"data": a})
}

// @Summary Evaluate assessment
// @Description Answers are keyed by question position: q1, q2, ...
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param body body EvaluateAssessmentRequest true "Answers"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/assessments/{id}/evaluate [post]
func (c *AssessmentController) Evaluate(ctx *gin.Context) {
	var req EvaluateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.AssessmentService.Evaluate(ctx.Param("id"), req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"data": res})
}

// @Summary Get latest evaluation result
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/assessments/{id}/result [get]
func (c *AssessmentController) GetResult(ctx *gin.Context) {
	res, err := c.AssessmentService.GetResult(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"data": res})
}
