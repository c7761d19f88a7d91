package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wfunc/guess-game/internal/logger"
)

// 上下文键
const (
	CtxRequestID     = "requestID"
	CtxCorrelationID = "correlationID"
	CtxStartTime     = "startTime"
)

// 请求头
const (
	HeaderRequestID     = "X-Request-Id"
	HeaderCorrelationID = "X-Correlation-Id"
	HeaderAmznRequestID = "X-Amzn-Requestid"
)

// RequestContext 请求上下文中间件
// 为每个请求分配requestId与correlationId，写入响应头并记录访问日志
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// requestId优先取上游传入的值
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = c.GetHeader(HeaderAmznRequestID)
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		// correlationId缺省回退到requestId
		correlationID := c.GetHeader(HeaderCorrelationID)
		if correlationID == "" {
			correlationID = requestID
		}

		c.Set(CtxRequestID, requestID)
		c.Set(CtxCorrelationID, correlationID)
		c.Set(CtxStartTime, start)

		// 响应头回传标识，禁止缓存
		c.Header(HeaderRequestID, requestID)
		c.Header(HeaderCorrelationID, correlationID)
		c.Header("Cache-Control", "no-store")

		c.Next()

		logger.LogRequest(
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			requestID,
		)
	}
}

// GetRequestID 从上下文获取requestId
func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}

// GetCorrelationID 从上下文获取correlationId
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(CtxCorrelationID)
}

// GetStartTime 从上下文获取请求开始时间
func GetStartTime(c *gin.Context) time.Time {
	if v, ok := c.Get(CtxStartTime); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Now()
}
