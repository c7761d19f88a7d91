package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试历史序列化
func TestIntSliceValue(t *testing.T) {
	v, err := IntSlice{30, 42}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[30,42]", v)

	// nil切片序列化为空数组
	var empty IntSlice
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

// 测试历史反序列化
func TestIntSliceScan(t *testing.T) {
	var s IntSlice
	require.NoError(t, s.Scan("[30,42]"))
	assert.Equal(t, IntSlice{30, 42}, s)

	require.NoError(t, s.Scan([]byte("[1]")))
	assert.Equal(t, IntSlice{1}, s)

	// NULL与空值归为空切片
	require.NoError(t, s.Scan(nil))
	assert.Equal(t, IntSlice{}, s)
	require.NoError(t, s.Scan(""))
	assert.Equal(t, IntSlice{}, s)

	// 不支持的类型
	assert.Error(t, s.Scan(3.14))
}

// 测试状态推导
func TestGameStatus(t *testing.T) {
	g := &Game{}
	assert.Equal(t, StatusActive, g.Status())

	now := time.Now()
	g.Finished = true
	g.Won = true
	g.FinishedAt = &now
	assert.Equal(t, StatusWon, g.Status())

	g.Won = false
	assert.Equal(t, StatusLost, g.Status())
}

// 测试剩余次数
func TestGameAttemptsLeft(t *testing.T) {
	g := &Game{Attempts: 3}
	assert.Equal(t, 7, g.AttemptsLeft(10))

	// 不会出现负数
	g.Attempts = 12
	assert.Equal(t, 0, g.AttemptsLeft(10))
}
