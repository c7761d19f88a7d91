package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型（对客户端稳定，可用于分支判断）
type ErrorCode string

// 错误码定义
const (
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeBadRequest         ErrorCode = "BAD_REQUEST"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeStorage            ErrorCode = "STORAGE_ERROR"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// 错误码到HTTP状态码映射
var statusByCode = map[ErrorCode]int{
	CodeValidation:         http.StatusBadRequest,
	CodeBadRequest:         http.StatusBadRequest,
	CodeNotFound:           http.StatusNotFound,
	CodeConflict:           http.StatusConflict,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodeServiceUnavailable: http.StatusServiceUnavailable,
	CodeStorage:            http.StatusInternalServerError,
	CodeInternal:           http.StatusInternalServerError,
}

// 错误码默认消息
var defaultMessages = map[ErrorCode]string{
	CodeValidation:         "Validation failed",
	CodeBadRequest:         "Bad request",
	CodeNotFound:           "Resource not found",
	CodeConflict:           "Conflict",
	CodeUnauthorized:       "Unauthorized",
	CodeForbidden:          "Forbidden",
	CodeServiceUnavailable: "Service unavailable",
	CodeStorage:            "Storage operation failed",
	CodeInternal:           "Internal server error",
}

// AppError 应用错误结构
type AppError struct {
	Code    ErrorCode   `json:"code"`              // 错误码
	Message string      `json:"message"`           // 错误消息
	Details interface{} `json:"details,omitempty"` // 详细信息
	Cause   error       `json:"-"`                 // 原始错误
}

// ErrorBody 错误响应体（信封error字段）
type ErrorBody struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus 返回对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause 添加原因错误
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// Body 生成对外错误响应体；非开发模式下5xx错误的消息与详情会被脱敏
func (e *AppError) Body(devMode bool) *ErrorBody {
	if !devMode && e.HTTPStatus() >= http.StatusInternalServerError {
		return &ErrorBody{
			Code:    e.Code,
			Message: defaultMessages[CodeInternal],
		}
	}
	return &ErrorBody{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	if message == "" {
		message = defaultMessages[code]
	}
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 创建格式化的应用错误
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装错误；已是AppError时保留原始错误码
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return New(code, message).WithCause(err)
}

// From 将任意错误强制转换为AppError；未分类错误一律归为内部错误
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return New(CodeInternal, err.Error()).WithCause(err)
}

// Is 判断错误是否为指定错误码
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// GetCode 获取错误码
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// 便捷构造函数

// Validation 创建参数校验错误
func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// BadRequest 创建请求格式错误
func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

// NotFound 创建资源不存在错误
func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

// Conflict 创建状态冲突错误
func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

// Unauthorized 创建未认证错误（当前游戏逻辑未使用，保留在错误分类中）
func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message)
}

// Forbidden 创建无权限错误（当前游戏逻辑未使用，保留在错误分类中）
func Forbidden(message string) *AppError {
	return New(CodeForbidden, message)
}

// ServiceUnavailable 创建依赖不可用错误
func ServiceUnavailable(message string) *AppError {
	return New(CodeServiceUnavailable, message)
}

// Storage 包装存储层失败
func Storage(err error, message string) *AppError {
	if message == "" {
		message = defaultMessages[CodeStorage]
	}
	return New(CodeStorage, message).WithCause(err)
}

// Internal 创建内部错误
func Internal(message string) *AppError {
	return New(CodeInternal, message)
}
