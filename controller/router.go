package controller

import (
	"github.com/BubsLB/airdropbreakdown/conf"
	"github.com/BubsLB/airdropbreakdown/controller/handler"
	"github.com/BubsLB/airdropbreakdown/controller/middleware"
	"github.com/BubsLB/airdropbreakdown/controller/respond"
	checkerDocs "github.com/BubsLB/airdropbreakdown/docs/checker"
	"github.com/BubsLB/airdropbreakdown/metrics"
	"github.com/BubsLB/airdropbreakdown/service/dataset_service"
	"github.com/BubsLB/airdropbreakdown/service/eligibility_service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var logger = logrus.StandardLogger().WithField("module", "controller")

// SetupRouter setup eligibility service router
func SetupRouter(checkService *eligibility_service.CheckService, loader *dataset_service.Loader, limiter *middleware.RateLimiter) *gin.Engine {
	// Set Swagger host from config
	if conf.Cfg != nil && conf.Cfg.Checker.SwaggerBaseUrl != "" {
		checkerDocs.SwaggerInfochecker.Host = conf.Cfg.Checker.SwaggerBaseUrl
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("Panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		respond.ServerError(c, "internal server error")
		c.Abort()
	}))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * 3600, // 12 hours
	}))

	// Add timing middleware
	r.Use(respond.TimingMiddleware())

	eligibilityHandler := handler.NewEligibilityHandler(checkService, loader)

	// API v1 route group
	v1 := r.Group("/api/v1")
	{
		eligibility := v1.Group("/eligibility")
		if limiter != nil {
			eligibility.Use(limiter.Middleware())
		}
		{
			// Check from the page form
			eligibility.POST("/check", eligibilityHandler.PostCheck)

			// Check by path
			eligibility.GET("/:address", eligibilityHandler.GetEligibility)
		}

		v1.GET("/schemes", eligibilityHandler.ListSchemes)
		v1.GET("/status", eligibilityHandler.GetStatus)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "airdrop-checker",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(checkerDocs.SwaggerInfochecker.InstanceName())))

	r.NoRoute(func(c *gin.Context) {
		respond.NotFound(c, "route not found")
	})

	return r
}
