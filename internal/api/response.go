package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/guess-game/internal/config"
	apperrors "github.com/wfunc/guess-game/internal/errors"
	"github.com/wfunc/guess-game/internal/middleware"
)

// Version 构建版本，由编译参数注入
var Version = "dev"

// Meta 响应信封元信息
type Meta struct {
	RequestID     string `json:"requestId"`
	CorrelationID string `json:"correlationId"`
	Timestamp     string `json:"timestamp"`
	DurationMs    *int64 `json:"durationMs,omitempty"`
	Path          string `json:"path"`
	Method        string `json:"method"`
	Stage         string `json:"stage"`
	Version       string `json:"version"`
}

// Envelope 统一响应信封，成功与失败共用
type Envelope struct {
	Success bool                 `json:"success"`
	Data    interface{}          `json:"data,omitempty"`
	Error   *apperrors.ErrorBody `json:"error,omitempty"`
	Meta    Meta                 `json:"meta"`
}

// buildMeta 构造响应元信息，durationMs从请求进入管道开始计
func buildMeta(c *gin.Context) Meta {
	duration := time.Since(middleware.GetStartTime(c)).Milliseconds()

	return Meta{
		RequestID:     middleware.GetRequestID(c),
		CorrelationID: middleware.GetCorrelationID(c),
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		DurationMs:    &duration,
		Path:          c.Request.URL.Path,
		Method:        c.Request.Method,
		Stage:         stage(),
		Version:       Version,
	}
}

// stage 当前运行环境
func stage() string {
	if cfg := config.Get(); cfg != nil {
		return cfg.Server.Mode
	}
	return "development"
}

// devMode 是否为开发模式
func devMode() bool {
	if cfg := config.Get(); cfg != nil {
		return cfg.Server.IsDevelopment()
	}
	return true
}

// Success 写出成功响应
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Meta:    buildMeta(c),
	})
}

// Fail 写出失败响应；未分类错误归为内部错误，非开发模式下脱敏
func Fail(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr == nil {
		appErr = apperrors.Internal("")
	}

	c.JSON(appErr.HTTPStatus(), Envelope{
		Success: false,
		Error:   appErr.Body(devMode()),
		Meta:    buildMeta(c),
	})
}
