package router

import (
	"time"

	"donation/api"
	"donation/config"
	_ "donation/docs"
	"donation/middleware"
	"donation/models"
	"donation/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	entryService := service.NewEntryService()
	notifier := service.NewNotifier(cfg)

	authHandler := api.NewAuthHandler(cfg)
	entryHandler := api.NewEntryHandler(entryService, notifier)
	summaryHandler := api.NewSummaryHandler(entryService)
	exportHandler := api.NewExportHandler(entryService)
	optionsHandler := api.NewOptionsHandler(cfg)

	v1 := r.Group("/api/v1")
	{
		// 登录（无需认证，限流防爆破）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		}

		// 表单选项（无需登录）
		v1.GET("/options", optionsHandler.GetOptions)

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)

			// 奉献记录：所有登录用户可读，编辑及以上可录入，管理员可改删
			entries := authorized.Group("/entries")
			{
				entries.POST("", middleware.RequireRole(models.RoleEditor), entryHandler.CreateEntry)
				entries.GET("", entryHandler.ListEntries)
				entries.GET("/summary", summaryHandler.GetSummary)
				entries.GET("/:id", entryHandler.GetEntry)
				entries.PUT("/:id", middleware.RequireRole(models.RoleAdmin), entryHandler.UpdateEntry)
				entries.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), entryHandler.DeleteEntry)
			}

			// 导出相关
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
