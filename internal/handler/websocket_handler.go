package handler

import (
	"net/http"
	"strings"

	"PortfolioSite/internal/assistant"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SetAllowedOrigins Origin 검사 목록 설정. 비어 있거나 "*"가 있으면 모두 허용
func SetAllowedOrigins(origins []string) {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			upgrader.CheckOrigin = func(r *http.Request) bool { return true }
			return
		}
		allowed[strings.TrimSuffix(o, "/")] = true
	}
	if len(allowed) == 0 {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
		return
	}
	upgrader.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

// HandleChatConnection godoc
// @Summary      AI 채팅 WebSocket 연결
// @Description  텍스트 프레임 하나가 사용자 메시지 하나이며, 같은 채팅 서비스로 응답합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴으로 연결해야 합니다.
// @Description  프레임은 일반 텍스트 또는 `{"message": "..."}` JSON이며, 응답은 `{session_id, message, response}` JSON입니다.
// @Tags         Chat
// @Param        session_id query    string false "이어서 사용할 세션 ID"
// @Success      101        {string} string "101 Switching Protocols"
// @Failure      500        {object} handler.ErrorResponse "API 키 미설정"
// @Router       /ws/chat [get]
func HandleChatConnection(c *gin.Context) {
	svc := current().Assistant
	if !svc.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": assistant.ErrNotConfigured.Error()})
		return
	}
	sessionID := c.Query("session_id")

	// WebSocket 연결 업그레이드과 종료
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("HandleChatConnection(): failed to upgrade", zap.String("client_ip", c.ClientIP()), zap.Error(err))
		return
	}
	zap.L().Info("HandleChatConnection(): connection established", zap.String("client_ip", c.ClientIP()))

	manageTextSession(c.Request.Context(), conn, svc, sessionID)
}
