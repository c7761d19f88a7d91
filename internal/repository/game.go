package repository

import (
	"context"
	"errors"

	apperrors "github.com/wfunc/guess-game/internal/errors"
	"github.com/wfunc/guess-game/internal/models"
	"gorm.io/gorm"
)

// GameRepository 游戏仓储接口
// 游戏不存在不是异常：FindByGameID返回(nil, nil)，由调用方决定如何处理
type GameRepository interface {
	BaseRepository
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, game *models.Game) error
	FindByGameID(ctx context.Context, gameID string) (*models.Game, error)
}

// gameRepo 游戏仓储实现
type gameRepo struct {
	*BaseRepo
}

// NewGameRepository 创建游戏仓储
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建游戏记录
func (r *gameRepo) Create(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return apperrors.Storage(err, "创建游戏记录失败")
	}
	return nil
}

// Update 保存游戏完整状态
func (r *gameRepo) Update(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Save(game).Error; err != nil {
		return apperrors.Storage(err, "更新游戏记录失败")
	}
	return nil
}

// FindByGameID 根据对外标识查找游戏，不存在时返回(nil, nil)
func (r *gameRepo) FindByGameID(ctx context.Context, gameID string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where("game_id = ?", gameID).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage(err, "查询游戏记录失败")
	}
	return &game, nil
}

// WithTx 使用事务
func (r *gameRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &gameRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
