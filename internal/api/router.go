package api

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/guess-game/internal/errors"
	"github.com/wfunc/guess-game/internal/logger"
	"github.com/wfunc/guess-game/internal/middleware"
	"github.com/wfunc/guess-game/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router API路由器
type Router struct {
	engine        *gin.Engine
	db            *gorm.DB
	services      *service.Services
	gameHandler   *GameHandler
	healthHandler *HealthHandler
	log           *zap.Logger
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, cfg *service.Config, log *zap.Logger) *Router {
	// 创建Gin引擎
	engine := gin.New()

	// 全局中间件
	engine.Use(middleware.RequestContext())
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		Fail(c, apperrors.Internal("Unhandled server error"))
	}))

	// 创建服务
	services := service.NewServices(db, cfg, log)

	// 创建处理器
	gameHandler := NewGameHandler(services.Game)
	healthHandler := NewHealthHandler(db)

	router := &Router{
		engine:        engine,
		db:            db,
		services:      services,
		gameHandler:   gameHandler,
		healthHandler: healthHandler,
		log:           log,
	}

	// 设置路由
	router.setupRoutes()

	return router
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 健康检查
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/ready", r.healthHandler.Ready)

	// 游戏路由
	games := r.engine.Group("/games")
	{
		games.POST("", r.gameHandler.StartGame)
		games.POST("/:gameId/guesses", r.gameHandler.MakeGuess)
	}

	// API文档
	registerOpenAPIRoutes(r.engine)
	registerSwaggerRoutes(r.engine)

	// 404处理
	r.engine.NoRoute(func(c *gin.Context) {
		Fail(c, apperrors.NotFound("Route not found"))
	})
}

// Run 运行服务器
func (r *Router) Run(addr string) error {
	r.log.Info("Starting API server", zap.String("address", addr))
	return r.engine.Run(addr)
}

// GetEngine 获取Gin引擎（用于测试）
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
