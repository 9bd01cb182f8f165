package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/ratelimit"
	"github.com/easayliu/alist-aria2-metainfo/internal/interfaces/http/handlers"
	"github.com/easayliu/alist-aria2-metainfo/internal/interfaces/http/middleware"
)

// 限流器中空闲客户端的保留时间
const limiterIdleTTL = 10 * time.Minute

// RoutesConfig 路由配置
type RoutesConfig struct {
	metaInfo handlers.MetaInfoService
	health   *handlers.HealthHandler
	qps      int
}

// NewRoutesConfig qps<=0 表示不限流
func NewRoutesConfig(metaInfo handlers.MetaInfoService, health *handlers.HealthHandler, qps int) *RoutesConfig {
	return &RoutesConfig{
		metaInfo: metaInfo,
		health:   health,
		qps:      qps,
	}
}

// SetupRoutes 创建路由
func (rc *RoutesConfig) SetupRoutes() *gin.Engine {
	router := gin.New()

	// 全局中间件,错误处理需在限流之前注册
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())

	// Swagger文档路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	metaInfoHandler := handlers.NewMetaInfoHandler(rc.metaInfo)
	limiter := ratelimit.NewKeyedLimiter(rc.qps, limiterIdleTTL)

	api := router.Group("/api/v1")
	{
		// 健康检查不限流
		api.GET("/health", rc.health.HealthCheck)

		limited := api.Group("")
		limited.Use(middleware.RateLimitMiddleware(limiter))

		metainfo := limited.Group("/metainfo")
		{
			metainfo.POST("/parse", metaInfoHandler.Parse)
			metainfo.POST("/batch", metaInfoHandler.ParseBatch)
		}

		downloads := limited.Group("/downloads")
		{
			downloads.GET("/:gid/metainfo", metaInfoHandler.InspectDownload)
		}
	}

	return router
}
