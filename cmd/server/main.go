package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/guess-game/internal/api"
	"github.com/wfunc/guess-game/internal/config"
	"github.com/wfunc/guess-game/internal/database"
	"github.com/wfunc/guess-game/internal/logger"
	"github.com/wfunc/guess-game/internal/models"
	"github.com/wfunc/guess-game/internal/service"
	"go.uber.org/zap"
)

// 版本信息
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Server 服务器实例
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	router     *api.Router
	httpServer *http.Server
}

func main() {
	// 命令行参数
	var (
		configPath  = flag.String("config", "", "配置文件路径")
		showVersion = flag.Bool("version", false, "显示版本信息")
	)

	flag.Parse()

	// 显示版本信息
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// 加载配置
	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Get()

	// 初始化日志系统
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	// 创建服务器实例
	server, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("服务器初始化失败", zap.Error(err))
	}

	// 启动服务器
	server.Start()

	// 等待退出信号并优雅关闭
	server.WaitForShutdown()
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	// 设置Gin运行模式
	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 应用游戏表名配置
	models.SetGameTable(cfg.Game.Table)

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("初始化数据库失败: %w", err)
	}

	// 自动迁移数据库
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	// 数据库连通性检查
	if !database.IsConnected() {
		return nil, fmt.Errorf("数据库连接检查失败")
	}

	// 版本注入响应信封
	api.Version = Version

	// 创建路由器
	router := api.NewRouter(
		database.GetDB(),
		service.FromGameConfig(&cfg.Game),
		logger.GetLogger(),
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		cfg:        cfg,
		logger:     logger.GetLogger(),
		router:     router,
		httpServer: httpServer,
	}, nil
}

// Start 启动HTTP服务
func (s *Server) Start() {
	s.logger.Info("正在启动猜数字游戏服务器...",
		zap.String("version", Version),
		zap.String("mode", s.cfg.Server.Mode),
		zap.String("address", s.httpServer.Addr),
	)

	// 监听配置变化
	config.Watch(func(newCfg *config.Config) {
		s.cfg = newCfg
		s.logger.Info("配置已重新加载")
	})

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("HTTP服务启动失败", zap.Error(err))
		}
	}()

	s.logger.Info("服务器启动成功")
}

// WaitForShutdown 等待关闭信号并优雅关闭
func (s *Server) WaitForShutdown() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigCh
	s.logger.Info("收到退出信号", zap.String("signal", sig.String()))

	// 在超时内停止接收并处理完存量请求
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP服务关闭失败", zap.Error(err))
	}

	// 关闭数据库连接
	if err := database.Close(); err != nil {
		s.logger.Error("关闭数据库失败", zap.Error(err))
	}

	// 同步日志
	logger.Cleanup()

	s.logger.Info("服务器已安全关闭")
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("猜数字游戏服务器\n")
	fmt.Printf("版本: %s\n", Version)
	fmt.Printf("构建时间: %s\n", BuildTime)
	fmt.Printf("Git提交: %s\n", GitCommit)
	fmt.Printf("Go版本: %s\n", runtime.Version())
	fmt.Printf("操作系统: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
