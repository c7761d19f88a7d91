package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wfunc/guess-game/internal/errors"
	"github.com/wfunc/guess-game/internal/models"
)

// newTestGame 创建测试游戏记录
func newTestGame(secret int) *models.Game {
	return &models.Game{
		GameID:       uuid.NewString(),
		SecretNumber: secret,
		GuessHistory: models.IntSlice{},
	}
}

func TestGameRepository_Create(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	// 测试创建游戏
	game := newTestGame(42)
	err := repo.Create(ctx, game)
	require.NoError(t, err)
	assert.NotZero(t, game.ID)

	// 验证游戏已创建
	found, err := repo.FindByGameID(ctx, game.GameID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, game.GameID, found.GameID)
	assert.Equal(t, 42, found.SecretNumber)
	assert.Equal(t, 0, found.Attempts)
	assert.False(t, found.Finished)
}

func TestGameRepository_CreateDuplicate(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game := newTestGame(10)
	require.NoError(t, repo.Create(ctx, game))

	// 相同gameId重复创建违反唯一索引，包装为存储错误
	dup := &models.Game{
		GameID:       game.GameID,
		SecretNumber: 20,
		GuessHistory: models.IntSlice{},
	}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeStorage, apperrors.GetCode(err))
}

func TestGameRepository_FindByGameIDAbsent(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	// 不存在的游戏返回(nil, nil)，不是错误
	found, err := repo.FindByGameID(ctx, "no-such-game")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGameRepository_Update(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game := newTestGame(42)
	require.NoError(t, repo.Create(ctx, game))

	// 模拟两次猜测后猜中
	now := time.Now().Truncate(time.Second)
	game.Attempts = 2
	game.GuessHistory = models.IntSlice{30, 42}
	game.Finished = true
	game.Won = true
	game.FinishedAt = &now
	require.NoError(t, repo.Update(ctx, game))

	// 往返验证：重新读取得到完全一致的状态
	found, err := repo.FindByGameID(ctx, game.GameID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 2, found.Attempts)
	assert.Equal(t, models.IntSlice{30, 42}, found.GuessHistory)
	assert.True(t, found.Finished)
	assert.True(t, found.Won)
	require.NotNil(t, found.FinishedAt)
	assert.WithinDuration(t, now, *found.FinishedAt, time.Second)
	assert.Equal(t, models.StatusWon, found.Status())
}

func TestGameRepository_GuessHistoryRoundTrip(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game := newTestGame(77)
	require.NoError(t, repo.Create(ctx, game))

	// 逐次追加历史并保存，每次读取都与内存状态一致
	for i, guess := range []int{10, 20, 30, 40} {
		game.Attempts++
		game.GuessHistory = append(game.GuessHistory, guess)
		require.NoError(t, repo.Update(ctx, game))

		found, err := repo.FindByGameID(ctx, game.GameID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, i+1, found.Attempts)
		assert.Equal(t, game.GuessHistory, found.GuessHistory)
		assert.Equal(t, found.Attempts, len(found.GuessHistory))
	}
}

func TestGameRepository_EmptyHistoryScan(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	// 空历史往返后仍是空切片而不是nil
	game := newTestGame(5)
	require.NoError(t, repo.Create(ctx, game))

	found, err := repo.FindByGameID(ctx, game.GameID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotNil(t, found.GuessHistory)
	assert.Len(t, found.GuessHistory, 0)
}
