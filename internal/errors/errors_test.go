package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ErrorsTestSuite 错误包测试套件
type ErrorsTestSuite struct {
	suite.Suite
}

// 测试创建新错误
func (suite *ErrorsTestSuite) TestNew() {
	err := New(CodeNotFound, "game not found")
	suite.NotNil(err)
	suite.Equal(CodeNotFound, err.Code)
	suite.Equal("game not found", err.Message)
	suite.Nil(err.Details)

	// 消息为空时使用默认消息
	err = New(CodeConflict, "")
	suite.Equal("Conflict", err.Message)
}

// 测试格式化错误创建
func (suite *ErrorsTestSuite) TestNewf() {
	err := Newf(CodeValidation, "guess %d out of range [%d,%d]", 150, 1, 100)
	suite.Equal(CodeValidation, err.Code)
	suite.Equal("guess 150 out of range [1,100]", err.Message)
}

// 测试HTTP状态码映射
func (suite *ErrorsTestSuite) TestHTTPStatus() {
	suite.Equal(http.StatusBadRequest, Validation("").HTTPStatus())
	suite.Equal(http.StatusBadRequest, BadRequest("").HTTPStatus())
	suite.Equal(http.StatusNotFound, NotFound("").HTTPStatus())
	suite.Equal(http.StatusConflict, Conflict("").HTTPStatus())
	suite.Equal(http.StatusUnauthorized, Unauthorized("").HTTPStatus())
	suite.Equal(http.StatusForbidden, Forbidden("").HTTPStatus())
	suite.Equal(http.StatusServiceUnavailable, ServiceUnavailable("").HTTPStatus())
	suite.Equal(http.StatusInternalServerError, Internal("").HTTPStatus())
	suite.Equal(http.StatusInternalServerError, Storage(nil, "").HTTPStatus())

	// 未知错误码归为500
	unknown := &AppError{Code: "SOMETHING_ELSE"}
	suite.Equal(http.StatusInternalServerError, unknown.HTTPStatus())
}

// 测试错误包装
func (suite *ErrorsTestSuite) TestWrap() {
	originalErr := errors.New("connection refused")
	wrappedErr := Wrap(originalErr, CodeStorage, "put item failed")
	suite.NotNil(wrappedErr)
	suite.Equal(CodeStorage, wrappedErr.Code)
	suite.Equal("put item failed", wrappedErr.Message)
	suite.Equal(originalErr, wrappedErr.Cause)
	suite.ErrorIs(wrappedErr, originalErr)

	// 包装nil错误
	suite.Nil(Wrap(nil, CodeInternal, ""))

	// 包装已有的AppError时保留原始错误码
	appErr := NotFound("game not found")
	rewrapped := Wrap(appErr, CodeInternal, "other")
	suite.Equal(CodeNotFound, rewrapped.Code)
}

// 测试错误强制转换
func (suite *ErrorsTestSuite) TestFrom() {
	suite.Nil(From(nil))

	// AppError原样返回
	appErr := Conflict("game finished")
	suite.Equal(appErr, From(appErr))

	// 普通错误归为内部错误
	plain := errors.New("boom")
	coerced := From(plain)
	suite.Equal(CodeInternal, coerced.Code)
	suite.Equal("boom", coerced.Message)
	suite.Equal(plain, coerced.Cause)
}

// 测试错误码判断
func (suite *ErrorsTestSuite) TestIs() {
	err := NotFound("")
	suite.True(Is(err, CodeNotFound))
	suite.False(Is(err, CodeConflict))
	suite.False(Is(nil, CodeNotFound))
	suite.False(Is(errors.New("plain"), CodeNotFound))
}

// 测试获取错误码
func (suite *ErrorsTestSuite) TestGetCode() {
	suite.Equal(ErrorCode(""), GetCode(nil))
	suite.Equal(CodeConflict, GetCode(Conflict("")))
	suite.Equal(CodeInternal, GetCode(errors.New("plain")))
}

// 测试响应体脱敏
func (suite *ErrorsTestSuite) TestBody() {
	// 4xx错误不脱敏
	notFound := NotFound("game not found").WithDetails(map[string]string{"gameId": "abc"})
	body := notFound.Body(false)
	suite.Equal(CodeNotFound, body.Code)
	suite.Equal("game not found", body.Message)
	suite.NotNil(body.Details)

	// 非开发模式下5xx错误脱敏
	internal := Internal("pq: connection reset").WithDetails("dsn=...")
	body = internal.Body(false)
	suite.Equal(CodeInternal, body.Code)
	suite.Equal("Internal server error", body.Message)
	suite.Nil(body.Details)

	// 开发模式下5xx错误保留原始消息
	body = internal.Body(true)
	suite.Equal("pq: connection reset", body.Message)
	suite.NotNil(body.Details)

	// 存储错误同样脱敏
	storage := Storage(errors.New("disk full"), "update game failed")
	body = storage.Body(false)
	suite.Equal(CodeStorage, body.Code)
	suite.Equal("Internal server error", body.Message)
}

// 测试错误消息格式
func (suite *ErrorsTestSuite) TestErrorString() {
	err := NotFound("game not found")
	suite.Equal("[NOT_FOUND] game not found", err.Error())

	wrapped := Storage(errors.New("timeout"), "get item failed")
	suite.Equal("[STORAGE_ERROR] get item failed: timeout", wrapped.Error())
}

// TestErrorsTestSuite 运行测试套件
func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}
