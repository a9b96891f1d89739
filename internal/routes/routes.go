package routes

import (
	"github.com/SketchShifter/tag_backend/internal/config"
	"github.com/SketchShifter/tag_backend/internal/controllers"
	"github.com/SketchShifter/tag_backend/internal/middlewares"
	"github.com/SketchShifter/tag_backend/internal/repository"
	"github.com/SketchShifter/tag_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies ルーター構築に必要な外部リソース
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client // nil ならキャッシュ無効
	Logger *zap.Logger
}

// SetupRouter ルーターを設定
func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger

	r := gin.New()

	// ミドルウェアを設定
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.ErrorMiddleware(log))
	r.Use(middlewares.SecureMiddleware(cfg.Server.Mode == gin.DebugMode))
	r.Use(middlewares.CORSMiddleware(cfg.Server.CORSOrigin))

	// リポジトリを作成
	userRepo := repository.NewUserRepository(deps.DB)
	tagRepo := repository.NewTagRepository(deps.DB)
	if deps.Redis != nil {
		tagRepo = repository.NewCachedTagRepository(tagRepo, deps.Redis, cfg.Redis.CacheTTL, log)
	}

	// サービスを作成
	var pinger services.Pinger
	if sqlDB, err := deps.DB.DB(); err == nil {
		pinger = sqlDB
	}
	authService := services.NewAuthService(userRepo, cfg)
	tagService := services.NewTagService(tagRepo)
	healthService := services.NewHealthService(pinger)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	tagController := controllers.NewTagController(tagService)
	healthController := controllers.NewHealthController(healthService)

	authMiddleware := middlewares.AuthMiddleware(authService)

	api := r.Group("/api/v1")
	{
		api.GET("/health", healthController.Check)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware, authController.GetMe)
		}

		// タグルート
		tags := api.Group("/tags")
		{
			tags.GET("", tagController.FindAll)
			tags.GET("/:id", tagController.FindOne)
			tags.POST("", authMiddleware, tagController.Create)
			tags.PUT("/:id", authMiddleware, tagController.Update)
			tags.DELETE("/:id", authMiddleware, tagController.Delete)
		}
	}

	return r
}
