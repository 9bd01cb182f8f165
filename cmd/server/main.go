package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/easayliu/alist-aria2-metainfo/docs"
	"github.com/easayliu/alist-aria2-metainfo/internal/application/container"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/config"
	"github.com/easayliu/alist-aria2-metainfo/internal/interfaces/http/handlers"
	"github.com/easayliu/alist-aria2-metainfo/internal/interfaces/http/routes"
	"github.com/easayliu/alist-aria2-metainfo/internal/interfaces/telegram"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

// @title Alist Aria2 MetaInfo API
// @version 1.0
// @description 从发布名推断媒体元信息,支持识别 aria2 下载任务

// @contact.name API Support

// @license.name MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化日志
	if err := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		Output:     cfg.Log.Output,
		Format:     cfg.Log.Format,
		FilePath:   cfg.Log.FilePath,
		Colorize:   cfg.Log.Colorize,
		AddSource:  cfg.Log.AddSource,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化服务容器
	c, err := container.NewServiceContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize service container:", err)
	}

	// 初始化路由
	var versions handlers.VersionGetter
	if aria2Client := c.GetAria2Client(); aria2Client != nil {
		versions = aria2Client
	}
	health := handlers.NewHealthHandler(c.GetTaggerName(), versions)
	router := routes.NewRoutesConfig(c.GetMetaInfoService(), health, cfg.Server.QPS).SetupRoutes()

	// Telegram 轮询
	var telegramController *telegram.TelegramController
	if tg := c.GetTelegramClient(); tg != nil && tg.Ready() {
		telegramController = telegram.NewTelegramController(tg, c.GetMetaInfoService())
		telegramController.StartPolling()
		logger.Info("Telegram polling mode enabled")
	}

	// 下载监听
	watcher := c.GetDownloadWatcher()
	if watcher != nil {
		if err := watcher.Start(); err != nil {
			log.Fatal("Failed to start download watcher:", err)
		}
	}

	// 设置信号处理
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		logger.Info("Starting server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// 等待退出信号
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if watcher != nil {
		watcher.Stop()
		logger.Info("Download watcher stopped")
	}
	if telegramController != nil {
		telegramController.StopPolling()
		logger.Info("Telegram polling stopped")
	}

	logger.Info("Server stopped")
}
