package service

import (
	"github.com/wfunc/guess-game/internal/config"
	"github.com/wfunc/guess-game/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config 服务配置
type Config struct {
	MinNumber   int // 随机数下界
	MaxNumber   int // 随机数上界
	MaxAttempts int // 猜测次数上限
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		MinNumber:   1,
		MaxNumber:   100,
		MaxAttempts: 10,
	}
}

// FromGameConfig 从全局配置构造服务配置
func FromGameConfig(cfg *config.GameConfig) *Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if cfg.MinNumber > 0 {
		c.MinNumber = cfg.MinNumber
	}
	if cfg.MaxNumber > c.MinNumber {
		c.MaxNumber = cfg.MaxNumber
	}
	if cfg.MaxAttempts > 0 {
		c.MaxAttempts = cfg.MaxAttempts
	}
	return c
}

// Services 服务集合
type Services struct {
	Game GameService
}

// NewServices 创建服务集合
func NewServices(db *gorm.DB, cfg *Config, log *zap.Logger) *Services {
	// 初始化仓储
	gameRepo := repository.NewGameRepository(db)

	// 初始化服务
	gameService := NewGameService(gameRepo, cfg, log)

	return &Services{
		Game: gameService,
	}
}
