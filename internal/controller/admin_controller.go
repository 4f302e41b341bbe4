package controller

import (
	"edusphere_backend/internal/service"
	"edusphere_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// AdminController 管理端只读列表和审核操作
type AdminController struct {
	Registrations *service.RegistrationService
	Evaluations   *service.EvaluationService
}

func NewAdminController(reg *service.RegistrationService, eval *service.EvaluationService) *AdminController {
	return &AdminController{Registrations: reg, Evaluations: eval}
}

// @Summary 学校报名列表
// @Tags 管理端
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param status query string false "状态过滤 pending/approved/rejected/all"
// @Param name query string false "学校名称模糊查询"
// @Success 200 {object} util.Response
// @Router /admin/registrations/schools [get]
func (c *AdminController) ListSchools(ctx *gin.Context) {
	page, limit := pagination(ctx)

	schools, total, err := c.Registrations.ListSchools(page, limit, ctx.Query("status"), ctx.Query("name"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: schools, Total: total, Page: page, Limit: limit})
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary 审核学校报名
// @Tags 管理端
// @Accept json
// @Produce json
// @Param id path string true "报名ID"
// @Param body body statusUpdateRequest true "目标状态"
// @Success 200 {object} util.Response
// @Router /admin/registrations/schools/{id}/status [put]
func (c *AdminController) UpdateSchoolStatus(ctx *gin.Context) {
	var req statusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Registrations.UpdateSchoolStatus(ctx.Param("id"), req.Status); err != nil {
		if errors.Is(err, util.ErrInvalidStatus) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 学生列表
// @Tags 管理端
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param schoolName query string false "学校名称过滤"
// @Param name query string false "学生姓名模糊查询"
// @Success 200 {object} util.Response
// @Router /admin/registrations/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	page, limit := pagination(ctx)

	students, total, err := c.Registrations.ListStudents(page, limit, ctx.Query("schoolName"), ctx.Query("name"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: students, Total: total, Page: page, Limit: limit})
}

// @Summary 评委报名列表
// @Tags 管理端
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param status query string false "状态过滤 pending/approved/rejected/all"
// @Param name query string false "评委姓名模糊查询"
// @Success 200 {object} util.Response
// @Router /admin/registrations/judges [get]
func (c *AdminController) ListJudges(ctx *gin.Context) {
	page, limit := pagination(ctx)

	judges, total, err := c.Registrations.ListJudges(page, limit, ctx.Query("status"), ctx.Query("name"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: judges, Total: total, Page: page, Limit: limit})
}

// @Summary 审核评委报名
// @Tags 管理端
// @Accept json
// @Produce json
// @Param id path string true "报名ID"
// @Param body body statusUpdateRequest true "目标状态"
// @Success 200 {object} util.Response
// @Router /admin/registrations/judges/{id}/status [put]
func (c *AdminController) UpdateJudgeStatus(ctx *gin.Context) {
	var req statusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Registrations.UpdateJudgeStatus(ctx.Param("id"), req.Status); err != nil {
		if errors.Is(err, util.ErrInvalidStatus) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 测评列表
// @Tags 管理端
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param studentId query string false "学生ID过滤"
// @Success 200 {object} util.Response
// @Router /admin/evaluations [get]
func (c *AdminController) ListEvaluations(ctx *gin.Context) {
	page, limit := pagination(ctx)

	es, total, err := c.Evaluations.ListEvaluations(ctx.Query("studentId"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: es, Total: total, Page: page, Limit: limit})
}

// @Summary 管理端概览
// @Description 报名数量汇总与测评总数、平均分
// @Tags 管理端
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	registrations, err := c.Registrations.Summary()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	evalCount, avgScore, err := c.Evaluations.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"registrations":   registrations,
		"evaluationCount": evalCount,
		"averageScore":    avgScore,
	})
}
