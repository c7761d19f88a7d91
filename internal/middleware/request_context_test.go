package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试生成requestId并回传响应头
func TestRequestContextGeneratesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestContext())

	var requestID, correlationID string
	engine.GET("/ping", func(c *gin.Context) {
		requestID = GetRequestID(c)
		correlationID = GetCorrelationID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	engine.ServeHTTP(w, req)

	require.NotEmpty(t, requestID)
	// correlationId缺省回退到requestId
	assert.Equal(t, requestID, correlationID)
	assert.Equal(t, requestID, w.Header().Get(HeaderRequestID))
	assert.Equal(t, requestID, w.Header().Get(HeaderCorrelationID))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

// 测试透传上游标识
func TestRequestContextPropagatesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestContext())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-abc")
	req.Header.Set(HeaderCorrelationID, "corr-def")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "req-abc", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "corr-def", w.Header().Get(HeaderCorrelationID))
}

// 测试兼容Amazon请求头
func TestRequestContextAmznHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestContext())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderAmznRequestID, "amzn-123")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "amzn-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "amzn-123", w.Header().Get(HeaderCorrelationID))
}
