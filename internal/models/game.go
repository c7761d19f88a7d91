package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GameStatus 游戏状态
type GameStatus string

const (
	StatusActive GameStatus = "ACTIVE" // 进行中
	StatusWon    GameStatus = "WON"    // 已猜中
	StatusLost   GameStatus = "LOST"   // 次数用尽
)

// IntSlice 整数切片，序列化为JSON存储
type IntSlice []int

// Value 实现driver.Valuer接口
func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现sql.Scanner接口
func (s *IntSlice) Scan(value interface{}) error {
	if value == nil {
		*s = IntSlice{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for IntSlice: %T", value)
	}
	if len(data) == 0 {
		*s = IntSlice{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// Game 猜数字游戏记录
type Game struct {
	ID           uint           `gorm:"primarykey" json:"-"`
	GameID       string         `gorm:"uniqueIndex;size:64;not null" json:"gameId"` // 对外游戏标识
	SecretNumber int            `gorm:"not null" json:"-"`                          // 目标数字，不对外暴露
	Attempts     int            `gorm:"default:0" json:"attempts"`                  // 已用次数
	GuessHistory IntSlice       `gorm:"type:text" json:"guessHistory"`              // 历史猜测（按顺序）
	Finished     bool           `gorm:"default:false;index" json:"finished"`        // 是否结束
	Won          bool           `gorm:"default:false" json:"won"`                   // 是否猜中
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"-"`
	FinishedAt   *time.Time     `json:"finishedAt,omitempty"` // 结束时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// 游戏记录表名，可由配置覆盖
var gameTable = "games"

// SetGameTable 覆盖游戏记录表名，须在建立数据库连接前调用
func SetGameTable(name string) {
	if name != "" {
		gameTable = name
	}
}

// TableName 指定表名
func (Game) TableName() string {
	return gameTable
}

// Status 计算当前游戏状态
func (g *Game) Status() GameStatus {
	if !g.Finished {
		return StatusActive
	}
	if g.Won {
		return StatusWon
	}
	return StatusLost
}

// AttemptsLeft 计算剩余次数
func (g *Game) AttemptsLeft(maxAttempts int) int {
	left := maxAttempts - g.Attempts
	if left < 0 {
		return 0
	}
	return left
}
