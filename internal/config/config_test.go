package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// 测试默认配置值
func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, 8080, v.GetInt("server.port"))
	assert.Equal(t, "development", v.GetString("server.mode"))
	assert.Equal(t, "sqlite", v.GetString("database.driver"))
	assert.True(t, v.GetBool("database.auto_migrate"))

	// 游戏参数默认值
	assert.Equal(t, 1, v.GetInt("game.min_number"))
	assert.Equal(t, 100, v.GetInt("game.max_number"))
	assert.Equal(t, 10, v.GetInt("game.max_attempts"))
	assert.Equal(t, "games", v.GetString("game.table"))

	assert.Equal(t, "info", v.GetString("log.level"))
}

// 测试配置解析到结构体
func TestUnmarshal(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("server.mode", "production")
	v.Set("game.max_attempts", 5)

	cfg := &Config{}
	assert.NoError(t, v.Unmarshal(cfg))
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, 5, cfg.Game.MaxAttempts)
	assert.False(t, cfg.Server.IsDevelopment())
}

// 测试开发模式判断
func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&ServerConfig{Mode: "development"}).IsDevelopment())
	assert.True(t, (&ServerConfig{Mode: "dev"}).IsDevelopment())
	assert.False(t, (&ServerConfig{Mode: "production"}).IsDevelopment())
	assert.False(t, (&ServerConfig{Mode: "test"}).IsDevelopment())
}
