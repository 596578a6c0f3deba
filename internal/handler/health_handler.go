package handler

import (
	"net/http"

	"PortfolioSite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health godoc
// @Summary      헬스 체크
// @Description  서버와 데이터베이스 상태를 확인합니다.
// @Tags         Portfolio
// @Produce      json
// @Success      200 {object} handler.StatusResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /api/health/ [get]
func Health(c *gin.Context) {
	if err := storage.Ping(); err != nil {
		zap.L().Error("Health(): database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
