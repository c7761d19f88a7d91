package game

import (
	"fmt"
	"time"

	"github.com/wfunc/guess-game/internal/models"
)

// Outcome 单次猜测的评估结果
type Outcome int

const (
	OutcomeTooLow  Outcome = iota // 猜小了
	OutcomeTooHigh                // 猜大了
	OutcomeWon                    // 猜中
	OutcomeLost                   // 次数用尽
)

// ErrFinished 对已结束的游戏再次猜测
type ErrFinished struct {
	Status models.GameStatus
}

// Error 实现error接口
func (e *ErrFinished) Error() string {
	return fmt.Sprintf("game already finished: %s", e.Status)
}

// Apply 对游戏应用一次猜测，就地修改游戏状态
// 纯状态转换：先递增次数并记录历史，再判定胜负；猜中判定先于次数判定，
// 第10次猜中依然算赢
func Apply(g *models.Game, guess int, maxAttempts int, now time.Time) (Outcome, error) {
	if g.Finished {
		return 0, &ErrFinished{Status: g.Status()}
	}

	g.Attempts++
	g.GuessHistory = append(g.GuessHistory, guess)

	switch {
	case guess == g.SecretNumber:
		g.Finished = true
		g.Won = true
		g.FinishedAt = &now
		return OutcomeWon, nil
	case g.Attempts >= maxAttempts:
		g.Finished = true
		g.Won = false
		g.FinishedAt = &now
		return OutcomeLost, nil
	case guess < g.SecretNumber:
		return OutcomeTooLow, nil
	default:
		return OutcomeTooHigh, nil
	}
}
