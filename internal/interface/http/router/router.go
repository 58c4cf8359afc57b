package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookcatalog/docs"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// NewEngine 创建并配置Gin引擎
// 路由：
//   - GET    /ping            健康检查
//   - GET    /metrics         Prometheus指标
//   - GET    /swagger/*any    API文档（swagger.enabled=true时）
//   - /books 与 /api/v1/books 图书CRUD及全文检索（两个挂载点行为一致）
func NewEngine(
	cfg *config.Config,
	logger *zap.Logger,
	bookHandler *handler.BookHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(),
	)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound, nil)
	})

	r.GET("/ping", healthHandler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 业务路由：限流、超时只作用于图书接口
	api := []gin.HandlerFunc{middleware.Timeout(cfg.Server.RequestTimeout)}
	if cfg.Server.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)
		api = append([]gin.HandlerFunc{limiter.Handler()}, api...)
	}

	bookHandler.RegisterRoutes(r.Group("/books", api...))
	bookHandler.RegisterRoutes(r.Group("/api/v1/books", api...))

	return r
}
