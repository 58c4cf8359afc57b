package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/pkg/response"
)

// HealthStatus 健康检查结果
type HealthStatus struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"up"`
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ping 健康检查(探测数据库连接)
// @Summary      健康检查
// @Tags         Health
// @Produce      json
// @Success      200 {object} response.ServiceResponse[handler.HealthStatus]
// @Failure      503 {object} response.ServiceResponse[handler.HealthStatus]
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		_ = c.Error(err)
		response.Handle(c, response.Failure("pong", HealthStatus{Status: "unhealthy", Database: "down"}, http.StatusServiceUnavailable))
		return
	}

	response.Handle(c, response.Success("pong", HealthStatus{Status: "healthy", Database: "up"}))
}
