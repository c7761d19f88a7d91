package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/guess-game/internal/errors"
	"gorm.io/gorm"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health 存活检查，不检查依赖
// @Summary 存活检查
// @Tags Health
// @Produce json
// @Success 200 {object} Envelope
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	Success(c, http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready 就绪检查，检查存储依赖
// @Summary 就绪检查
// @Tags Health
// @Produce json
// @Success 200 {object} Envelope
// @Failure 503 {object} Envelope
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.pingStorage(c); err != nil {
		Fail(c, apperrors.ServiceUnavailable("Storage dependency unavailable").
			WithDetails(gin.H{"storage": "unavailable"}).
			WithCause(err))
		return
	}

	Success(c, http.StatusOK, gin.H{
		"status": "ready",
		"dependencies": gin.H{
			"storage": "ok",
		},
	})
}

// pingStorage 检查数据库连通性
func (h *HealthHandler) pingStorage(c *gin.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}
