package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/profitlens/backend/internal/infrastructure/config"
	"github.com/profitlens/backend/internal/interfaces/http/handler"
	"github.com/profitlens/backend/internal/interfaces/http/middleware"
)

// New builds the gin engine with middleware and all API routes
func New(cfg *config.Config, logger *zap.Logger, profitHandler *handler.ProfitHandler) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			logger.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	{
		profit := v1.Group("/profit")
		{
			profit.GET("/daily", profitHandler.GetDailyReport)
			profit.GET("/range", profitHandler.GetRangeSummary)
		}
	}

	return engine
}
