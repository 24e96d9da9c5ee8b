package main

import (
	"class-website/app/server/apidocs"
	"class-website/app/server/assets"
	"class-website/app/server/handlers"
	"class-website/app/server/inits"
	"class-website/app/server/jwt"
	"class-website/app/server/middlewares"
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化内容存储
	st, err := inits.Store(cfg, l)
	if err != nil {
		l.Fatal("error initializing store", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}

	// 初始化 redis 连接（可选）
	rdb, revoked, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}
	if !revoked.Enabled() {
		l.Warn("REDIS_CONN not set, logout will not revoke tokens")
	}

	// 初始化图片存储
	blob, err := inits.Blob(cfg)
	if err != nil {
		l.Fatal("error initializing asset backend", zap.String("backend", cfg.Storage.AssetBackend), zap.Error(err))
	}

	// 初始化启动数据
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = inits.Seed(seedCtx, st, cfg.Admin.Username, cfg.Admin.Password, l)
	seedCancel()
	if err != nil {
		l.Fatal("error seeding initial data", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, st, j, revoked, assets.NewManager(blob, l.Named("assets")))

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlerApp.HTTPErrorHandler
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remoteIP", v.RemoteIP),
				zap.Error(v.Error),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// 绑定 echo 服务
	handlerApp.Register(e, middlewares.AdminAuth(j, revoked, l.Named("auth")))

	// 首页与管理面板
	e.Static("/", cfg.System.PublicDir)
	e.File("/", filepath.Join(cfg.System.PublicDir, "index.html"))
	e.File("/admin", filepath.Join(cfg.System.PublicDir, "admin.html"))

	// 添加 API 文档
	if !cfg.System.IsProd {
		if specJSON, err := apidocs.SpecJSON(context.Background()); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", specJSON))
		}
	}

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	l.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		l.Error("failed to shut down the server", zap.Error(err))
	}

	if err := st.Close(); err != nil {
		l.Error("failed to close store", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			l.Error("failed to close redis", zap.Error(err))
		}
	}
}
