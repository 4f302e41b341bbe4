package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, RDB: rdb}
}

// @Summary 健康检查
// @Description 检查数据库和 Redis 连接状态
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	status := http.StatusOK
	result := gin.H{"status": "ok", "database": "ok", "redis": "ok"}

	if sqlDB, err := c.DB.DB(); err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
		result["database"] = "unavailable"
		result["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}

	if c.RDB == nil || c.RDB.Ping(ctx.Request.Context()).Err() != nil {
		result["redis"] = "unavailable"
		if result["status"] == "ok" {
			result["status"] = "degraded"
		}
	}

	ctx.JSON(status, result)
}
