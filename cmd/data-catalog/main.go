package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"data-catalog/internal/adapter/notification"
	"data-catalog/internal/adapter/provision"
	"data-catalog/internal/api/router"
	"data-catalog/internal/pkg/config"
	"data-catalog/internal/pkg/database"
	"data-catalog/internal/pkg/jwt"
	"data-catalog/internal/pkg/logger"
	"data-catalog/internal/scheduler"
	"data-catalog/internal/service"

	_ "data-catalog/docs" // Swagger docs
)

// @title Data Catalog API
// @version 1.0
// @description 数据目录服务 API 文档
// @description 提供业务对象格式与数据登记、分区可用性检查、EMR集群定义与创建等功能

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "配置文件路径 (例如: -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "显示版本信息")
	issueToken = flag.String("issue-token", "", "为指定用户签发Token后退出")
)

const (
	appVersion = "1.0.0"
	appName    = "data-catalog"
)

func main() {
	// 解析命令行参数
	flag.Parse()

	// 显示版本信息
	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// init config logger
	var cfg *config.Config
	{
		// 优先级: 命令行参数 > 环境变量 > 默认路径
		configPath := getConfigPath()

		c, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			fmt.Println("\n使用方式:")
			fmt.Println("  1. 命令行参数指定:")
			fmt.Println("     ./data-catalog -config=configs/config.yaml")
			fmt.Println("  2. 环境变量指定:")
			fmt.Println("     export CONFIG_FILE=configs/config.yaml")
			fmt.Println("     ./data-catalog")
			fmt.Println("  3. 使用默认配置:")
			fmt.Println("     ./data-catalog  (将使用 configs/config.yaml)")
			os.Exit(1)
		}
		cfg = c

		if *issueToken != "" {
			printToken(cfg.Auth.JWT, *issueToken)
			return
		}

		// 初始化日志
		if err := logger.Init(&cfg.Log); err != nil {
			fmt.Printf("初始化日志失败: %v\n", err)
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("Load config file: %s of %s", configPath, getConfigSource()))

		defer func() {
			_ = logger.Close()
		}()
	}

	logger.Info(fmt.Sprintf("服务 %s 启动中...", appName), zap.String("version", appVersion))

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer func() {
		_ = database.Close()
	}()

	logger.Info(fmt.Sprintf("数据库连接成功 %s:%v", cfg.Database.Host, cfg.Database.Port), zap.String("database", cfg.Database.Database))

	ctx := context.Background()

	// 消息发送与集群创建
	publisher, err := notification.New(ctx, cfg.Messaging, logger.Named("notification"))
	if err != nil {
		logger.Fatal("初始化消息发送失败", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	provisioner, err := provision.NewEmrProvisioner(ctx, cfg.Emr.Region, logger.Named("emr"))
	if err != nil {
		logger.Fatal("初始化EMR客户端失败", zap.Error(err))
	}

	services := service.NewServices(cfg, database.GetDB(), publisher, provisioner)

	// 初始化并启动定时任务调度器
	taskScheduler := scheduler.NewScheduler(services.Notification, logger.Named("scheduler"))
	if publisher.Type() != "" {
		if err := taskScheduler.Start(cfg.Scheduler); err != nil {
			logger.Warn("定时任务调度器启动失败", zap.Error(err))
		}
	}

	// 设置路由
	r := router.Setup(cfg, services)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info(fmt.Sprintf("%s 服务启动成功", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
			zap.Bool("emr_dry_run", cfg.Emr.DryRun),
			zap.String("messaging", cfg.Messaging.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务正在关闭...")

	taskScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
}

// printToken 运维签发Token
func printToken(cfg config.JWTConfig, username string) {
	pair, err := jwt.GenerateTokenPair(cfg, username)
	if err != nil {
		fmt.Printf("签发Token失败: %v\n", err)
		os.Exit(1)
	}
	out, _ := json.MarshalIndent(pair, "", "  ")
	fmt.Println(string(out))
}

// getConfigPath 获取配置文件路径
// 优先级: 命令行参数 > 环境变量 > 默认路径
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}
	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}
	return "configs/config.yaml"
}

// getConfigSource 获取配置来源说明
func getConfigSource() string {
	if *configFile != "" {
		return "命令行参数"
	}
	if os.Getenv("CONFIG_FILE") != "" {
		return "环境变量"
	}
	return "默认配置"
}
