package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SketchShifter/tag_backend/internal/config"
	"github.com/SketchShifter/tag_backend/internal/logger"
	"github.com/SketchShifter/tag_backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "tag-api")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("サーバーを起動しています...")

	gin.SetMode(cfg.Server.Mode)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Debug("エンドポイント登録",
			zap.String("method", httpMethod),
			zap.String("path", absolutePath),
			zap.String("handler", handlerName),
			zap.Int("handlers", nuHandlers))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// データベース接続
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("データベース接続に失敗しました", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("SQLDBインスタンス取得に失敗しました", zap.Error(err))
	}
	defer sqlDB.Close()

	// Redis（任意）
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = config.InitRedis(ctx, cfg)
		if err != nil {
			log.Fatal("Redis接続に失敗しました", zap.Error(err))
		}
		defer redisClient.Close()
		log.Info("タグ一覧キャッシュを有効化しました", zap.Duration("ttl", cfg.Redis.CacheTTL))
	}

	router := routes.SetupRouter(routes.Dependencies{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Logger: log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("サーバーを開始しています...", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("サーバーの起動に失敗しました", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("サーバーを停止しています...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("サーバーの停止に失敗しました", zap.Error(err))
	}
}
