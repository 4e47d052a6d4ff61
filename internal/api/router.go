package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jengzang/accident-dashboard-go/internal/handler"
	"github.com/jengzang/accident-dashboard-go/internal/middleware"
	"github.com/jengzang/accident-dashboard-go/internal/observability"
	"github.com/jengzang/accident-dashboard-go/internal/service"
)

// Deps carries the collaborators the router wires together. Limiter may be
// nil to disable rate limiting.
type Deps struct {
	Dashboard *service.DashboardService
	Metrics   *observability.Collector
	Limiter   *middleware.RateLimiter
	Logger    *zap.Logger
}

// SetupRouter 设置路由
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(deps.Metrics.Middleware())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Accident Dashboard API is running",
			"records": deps.Dashboard.RecordCount(),
		})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)

	// API 路由组
	api := r.Group("/api/v1")
	if deps.Limiter != nil {
		api.Use(middleware.RateLimit(deps.Limiter, deps.Logger))
	}
	{
		api.GET("/regions", dashboardHandler.GetRegions)
		api.GET("/metrics", dashboardHandler.GetMetrics)

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", dashboardHandler.GetDashboard)
			dashboard.GET("/chart.png", dashboardHandler.GetChart)
			dashboard.GET("/export.xlsx", dashboardHandler.GetExport)
		}
	}

	return r
}
