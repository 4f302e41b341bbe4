package app

import (
	"edusphere_backend/docs"
	"edusphere_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.Check)

		// 测评
		api.POST("/evaluations", c.evaluation.Evaluate)
		api.GET("/evaluations/:id", c.evaluation.GetEvaluation)
		api.GET("/students/:studentId/evaluations", c.evaluation.ListStudentEvaluations)

		// 报名
		registrations := api.Group("/registrations")
		{
			registrations.POST("/schools", c.registration.RegisterSchool)
			registrations.GET("/schools/:id", c.registration.GetSchool)
			registrations.POST("/students", c.registration.RegisterStudent)
			registrations.GET("/students/:id", c.registration.GetStudent)
			registrations.POST("/judges", c.registration.RegisterJudge)
			registrations.GET("/judges/:id", c.registration.GetJudge)
		}

		// 教案
		api.POST("/lesson-plans", c.lessonPlan.Generate)
		api.GET("/lesson-plans", c.lessonPlan.List)
		api.GET("/lesson-plans/:id", c.lessonPlan.Get)
		api.DELETE("/lesson-plans/:id", c.lessonPlan.Delete)
	}

	// 管理端接口，访问控制由网关层负责
	admin := router.Group("/api/admin")
	{
		admin.GET("/dashboard", c.admin.Dashboard)
		admin.GET("/registrations/schools", c.admin.ListSchools)
		admin.PUT("/registrations/schools/:id/status", c.admin.UpdateSchoolStatus)
		admin.GET("/registrations/students", c.admin.ListStudents)
		admin.GET("/registrations/judges", c.admin.ListJudges)
		admin.PUT("/registrations/judges/:id/status", c.admin.UpdateJudgeStatus)
		admin.GET("/evaluations", c.admin.ListEvaluations)
	}
}
