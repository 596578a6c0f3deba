package handler

import (
	"errors"
	"net/http"

	"PortfolioSite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetChatHistory godoc
// @Summary      채팅 기록 조회
// @Description  세션의 전체 대화 기록을 오래된 순으로 반환합니다.
// @Tags         Chat
// @Produce      json
// @Param        session_id path     string true "세션 ID"
// @Success      200        {object} models.ChatSession
// @Failure      404        {object} handler.ErrorResponse "세션 없음"
// @Failure      500        {object} handler.ErrorResponse
// @Router       /api/chat-history/{session_id}/ [get]
func GetChatHistory(c *gin.Context) {
	session, err := storage.GetSessionWithMessages(c.Param("session_id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		zap.L().Error("GetChatHistory(): storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	// 빈 대화도 messages 키를 유지
	c.JSON(http.StatusOK, gin.H{
		"id":         session.ID,
		"session_id": session.SessionID,
		"messages":   session.Messages,
		"created_at": session.CreatedAt,
		"updated_at": session.UpdatedAt,
	})
}

// ListChatSessions godoc
// @Summary      채팅 세션 목록 (관리자)
// @Description  최근 활동 순으로 세션을 반환합니다.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  models.ChatSession
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/admin/chat-sessions [get]
func ListChatSessions(c *gin.Context) {
	sessions, err := storage.ListSessions()
	if err != nil {
		zap.L().Error("ListChatSessions(): storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
