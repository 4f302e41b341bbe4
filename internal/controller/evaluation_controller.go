package controller

import (
	"edusphere_backend/internal/service"
	"edusphere_backend/internal/util"
	"edusphere_backend/pkg/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EvaluationController struct {
	Service *service.EvaluationService
}

func NewEvaluationController(svc *service.EvaluationService) *EvaluationController {
	return &EvaluationController{Service: svc}
}

// @Summary 提交测评
// @Description 对一个或多个评估的学生答案判分，生成提升建议并保存
// @Tags 测评
// @Accept json
// @Produce json
// @Param body body service.EvaluateRequest true "测评请求"
// @Success 200 {object} service.EvaluateResult
// @Failure 400 {object} map[string]string
// @Router /evaluations [post]
func (c *EvaluationController) Evaluate(ctx *gin.Context) {
	var req service.EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 三个必填字段缺一即拒绝，不做任何部分处理
	if req.AssessmentID == "" || req.StudentID == "" || len(req.StudentAnswers) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	result, err := c.Service.Evaluate(ctx.Request.Context(), req)
	if err != nil {
		logger.Log.Error("evaluation failed",
			zap.String("studentId", req.StudentID),
			zap.String("assessmentId", req.AssessmentID),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to evaluate assessment",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary 获取测评结果
// @Tags 测评
// @Produce json
// @Param id path string true "测评ID"
// @Success 200 {object} util.Response
// @Router /evaluations/{id} [get]
func (c *EvaluationController) GetEvaluation(ctx *gin.Context) {
	id := ctx.Param("id")

	evaluation, err := c.Service.GetEvaluation(ctx.Request.Context(), id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, evaluation)
}

// @Summary 获取某个学生的测评列表
// @Tags 测评
// @Produce json
// @Param studentId path string true "学生ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /students/{studentId}/evaluations [get]
func (c *EvaluationController) ListStudentEvaluations(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	page, limit := pagination(ctx)

	es, total, err := c.Service.ListEvaluations(studentID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  es,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func pagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
