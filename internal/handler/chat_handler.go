package handler

import (
	"errors"
	"net/http"

	"PortfolioSite/internal/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// /api/ai-chat/ 요청 바디
type ChatRequest struct {
	Message   string `json:"message" example:"What projects have you built?"`
	SessionID string `json:"session_id" example:"1f0c8c3e-7a39-4a43-9a36-3b7d7e7b4a10"`
}

// AIChat godoc
// @Summary      포트폴리오 AI 채팅
// @Description  방문자 질문에 프로필 기반으로 답합니다. session_id가 없으면 새 세션을 만듭니다.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body handler.ChatRequest true "질문과 세션 ID"
// @Success      200 {object} assistant.Reply
// @Failure      400 {object} handler.ErrorResponse "메시지 누락"
// @Failure      429 {object} handler.ErrorResponse "요청 과다"
// @Failure      500 {object} handler.ErrorResponse "API 키 미설정 또는 모델 오류"
// @Router       /api/ai-chat/ [post]
func AIChat(c *gin.Context) {
	svc := current().Assistant
	if !svc.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": assistant.ErrNotConfigured.Error()})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reply, err := svc.Ask(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, assistant.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			zap.L().Error("AIChat(): chat failed", zap.String("session_id", req.SessionID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response"})
		}
		return
	}
	c.JSON(http.StatusOK, reply)
}
