package controller

import (
	"edusphere_backend/internal/service"
	"edusphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonPlanController struct {
	Service *service.LessonPlanService
}

func NewLessonPlanController(svc *service.LessonPlanService) *LessonPlanController {
	return &LessonPlanController{Service: svc}
}

// @Summary 生成教案
// @Description 调用大模型按学科、年级、主题生成结构化教案
// @Tags 教案
// @Accept json
// @Produce json
// @Param body body service.LessonPlanRequest true "教案请求"
// @Success 201 {object} util.Response
// @Router /lesson-plans [post]
func (c *LessonPlanController) Generate(ctx *gin.Context) {
	var req service.LessonPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.Service.GenerateLessonPlan(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, plan)
}

// @Summary 获取教案
// @Tags 教案
// @Produce json
// @Param id path string true "教案ID"
// @Success 200 {object} util.Response
// @Router /lesson-plans/{id} [get]
func (c *LessonPlanController) Get(ctx *gin.Context) {
	plan, err := c.Service.GetLessonPlan(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, plan)
}

// @Summary 教案列表
// @Tags 教案
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param subject query string false "学科过滤"
// @Param grade query string false "年级过滤"
// @Success 200 {object} util.Response
// @Router /lesson-plans [get]
func (c *LessonPlanController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)

	plans, total, err := c.Service.ListLessonPlans(page, limit, ctx.Query("subject"), ctx.Query("grade"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: plans, Total: total, Page: page, Limit: limit})
}

// @Summary 删除教案
// @Tags 教案
// @Produce json
// @Param id path string true "教案ID"
// @Success 200 {object} util.Response
// @Router /lesson-plans/{id} [delete]
func (c *LessonPlanController) Delete(ctx *gin.Context) {
	if err := c.Service.DeleteLessonPlan(ctx.Param("id")); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
