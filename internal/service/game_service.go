package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/wfunc/guess-game/internal/errors"
	"github.com/wfunc/guess-game/internal/game"
	"github.com/wfunc/guess-game/internal/models"
	"github.com/wfunc/guess-game/internal/repository"
	"go.uber.org/zap"
)

// StartGameResult 开始游戏结果
type StartGameResult struct {
	GameID  string `json:"gameId"`
	Message string `json:"message"`
}

// GuessResult 猜测结果
type GuessResult struct {
	Message      string `json:"message"`
	AttemptsLeft *int   `json:"attemptsLeft,omitempty"` // 仅在游戏继续时返回
	GuessHistory []int  `json:"guessHistory"`
}

// GameService 猜数字游戏服务接口
type GameService interface {
	StartGame(ctx context.Context) (*StartGameResult, error)
	MakeGuess(ctx context.Context, gameID string, guess int) (*GuessResult, error)
}

// gameService 猜数字游戏服务实现
type gameService struct {
	repo repository.GameRepository
	cfg  *Config
	log  *zap.Logger

	// 随机数生成，测试可替换为固定值
	randInt func(min, max int) int
	// 当前时间，测试可替换为固定时刻
	now func() time.Time
}

// NewGameService 创建猜数字游戏服务
func NewGameService(repo repository.GameRepository, cfg *Config, log *zap.Logger) GameService {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &gameService{
		repo: repo,
		cfg:  cfg,
		log:  log,
		randInt: func(min, max int) int {
			return rand.Intn(max-min+1) + min
		},
		now: time.Now,
	}
}

// StartGame 开始新游戏
func (s *gameService) StartGame(ctx context.Context) (*StartGameResult, error) {
	g := &models.Game{
		GameID:       uuid.NewString(),
		SecretNumber: s.randInt(s.cfg.MinNumber, s.cfg.MaxNumber),
		GuessHistory: models.IntSlice{},
	}

	if err := s.repo.Create(ctx, g); err != nil {
		s.log.Error("Failed to create game", zap.Error(err))
		return nil, err
	}

	s.log.Info("Game started",
		zap.String("gameId", g.GameID),
	)

	return &StartGameResult{
		GameID:  g.GameID,
		Message: fmt.Sprintf("Game started. Make a guess between %d and %d.", s.cfg.MinNumber, s.cfg.MaxNumber),
	}, nil
}

// MakeGuess 对指定游戏提交一次猜测
func (s *gameService) MakeGuess(ctx context.Context, gameID string, guess int) (*GuessResult, error) {
	if guess < s.cfg.MinNumber || guess > s.cfg.MaxNumber {
		return nil, apperrors.Newf(apperrors.CodeValidation,
			"Guess must be an integer between %d and %d.", s.cfg.MinNumber, s.cfg.MaxNumber)
	}

	g, err := s.repo.FindByGameID(ctx, gameID)
	if err != nil {
		s.log.Error("Failed to load game", zap.Error(err), zap.String("gameId", gameID))
		return nil, err
	}
	if g == nil {
		return nil, apperrors.NotFound("Game not found. Start a new game with POST /games")
	}

	outcome, err := game.Apply(g, guess, s.cfg.MaxAttempts, s.now())
	if err != nil {
		// 终止状态拒绝猜测，消息指明最终结果
		if g.Won {
			return nil, apperrors.Conflict("Game is already finished. You won.")
		}
		return nil, apperrors.Conflict("Game is already finished. You lost.")
	}

	// 状态变更先落库，失败时丢弃内存变更，客户端重试是安全的
	if err := s.repo.Update(ctx, g); err != nil {
		s.log.Error("Failed to persist guess", zap.Error(err), zap.String("gameId", gameID))
		return nil, err
	}

	result := &GuessResult{
		GuessHistory: g.GuessHistory,
	}

	switch outcome {
	case game.OutcomeWon:
		result.Message = fmt.Sprintf("Correct! You've guessed the number %d in %d attempt(s).", g.SecretNumber, g.Attempts)
	case game.OutcomeLost:
		result.Message = fmt.Sprintf("Game over! You've used all %d attempts. The number was %d.", s.cfg.MaxAttempts, g.SecretNumber)
	case game.OutcomeTooLow:
		left := g.AttemptsLeft(s.cfg.MaxAttempts)
		result.Message = "Too low. Try again!"
		result.AttemptsLeft = &left
	default:
		left := g.AttemptsLeft(s.cfg.MaxAttempts)
		result.Message = "Too high. Try again!"
		result.AttemptsLeft = &left
	}

	s.log.Info("Guess processed",
		zap.String("gameId", g.GameID),
		zap.Int("attempts", g.Attempts),
		zap.Bool("finished", g.Finished),
	)

	return result, nil
}
