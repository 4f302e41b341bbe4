package controller

import (
	"edusphere_backend/internal/service"
	"edusphere_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type RegistrationController struct {
	Service *service.RegistrationService
}

func NewRegistrationController(svc *service.RegistrationService) *RegistrationController {
	return &RegistrationController{Service: svc}
}

// @Summary 学校报名
// @Tags 报名
// @Accept json
// @Produce json
// @Param body body service.SchoolRegistrationRequest true "学校信息"
// @Success 201 {object} util.Response
// @Router /registrations/schools [post]
func (c *RegistrationController) RegisterSchool(ctx *gin.Context) {
	var req service.SchoolRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reg, err := c.Service.RegisterSchool(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, reg)
}

// @Summary 获取学校报名详情
// @Tags 报名
// @Produce json
// @Param id path string true "报名ID"
// @Success 200 {object} util.Response
// @Router /registrations/schools/{id} [get]
func (c *RegistrationController) GetSchool(ctx *gin.Context) {
	reg, err := c.Service.GetSchool(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, reg)
}

// @Summary 学生信息登记
// @Tags 报名
// @Accept json
// @Produce json
// @Param body body service.StudentDetailRequest true "学生信息"
// @Success 201 {object} util.Response
// @Router /registrations/students [post]
func (c *RegistrationController) RegisterStudent(ctx *gin.Context) {
	var req service.StudentDetailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.Service.RegisterStudent(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, student)
}

// @Summary 获取学生信息
// @Tags 报名
// @Produce json
// @Param id path string true "学生ID"
// @Success 200 {object} util.Response
// @Router /registrations/students/{id} [get]
func (c *RegistrationController) GetStudent(ctx *gin.Context) {
	student, err := c.Service.GetStudent(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, student)
}

// @Summary 评委报名
// @Tags 报名
// @Accept json
// @Produce json
// @Param body body service.JudgeRegistrationRequest true "评委信息"
// @Success 201 {object} util.Response
// @Router /registrations/judges [post]
func (c *RegistrationController) RegisterJudge(ctx *gin.Context) {
	var req service.JudgeRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	judge, err := c.Service.RegisterJudge(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, judge)
}

// @Summary 获取评委报名详情
// @Tags 报名
// @Produce json
// @Param id path string true "报名ID"
// @Success 200 {object} util.Response
// @Router /registrations/judges/{id} [get]
func (c *RegistrationController) GetJudge(ctx *gin.Context) {
	judge, err := c.Service.GetJudge(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, judge)
}
