package database

import (
	"fmt"

	"github.com/wfunc/guess-game/internal/logger"
	"github.com/wfunc/guess-game/internal/models"
	"go.uber.org/zap"
)

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate() error {
	if DB == nil {
		return fmt.Errorf("数据库未初始化")
	}

	// 定义需要迁移的模型
	migrationModels := []interface{}{
		&models.Game{},
	}

	if err := DB.AutoMigrate(migrationModels...); err != nil {
		logger.Error("数据库迁移失败", zap.Error(err))
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	logger.Info("数据库迁移完成", zap.Int("models", len(migrationModels)))
	return nil
}
