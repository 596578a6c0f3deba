package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"PortfolioSite/internal/assistant"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type wsIncoming struct {
	Message string `json:"message"`
}

type wsError struct {
	Error string `json:"error"`
}

// manageTextSession 연결이 끊길 때까지 한 세션으로 메시지를 주고받음
func manageTextSession(ctx context.Context, conn *websocket.Conn, svc *assistant.Service, sessionID string) {
	defer conn.Close()
	log := zap.L().With(zap.String("remote", conn.RemoteAddr().String()))
	log.Debug("manageTextSession(): started")

ReadLoop:
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("manageTextSession(): read failed", zap.Error(err))
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			log.Debug("manageTextSession(): unsupported message type", zap.Int("type", messageType))
			continue
		}

		reply, err := svc.Ask(ctx, sessionID, parseFrame(data))
		if err != nil {
			msg := "Failed to generate response"
			if errors.Is(err, assistant.ErrEmptyMessage) {
				msg = err.Error()
			} else {
				log.Error("manageTextSession(): chat failed", zap.String("session_id", sessionID), zap.Error(err))
			}
			if err := conn.WriteJSON(wsError{Error: msg}); err != nil {
				break ReadLoop
			}
			continue
		}

		sessionID = reply.SessionID
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("manageTextSession(): write failed", zap.Error(err))
			break ReadLoop
		}
	}
	log.Debug("manageTextSession(): ended", zap.String("session_id", sessionID))
}

// parseFrame JSON {"message": ...} 프레임이면 message 값을, 아니면 원문을 사용
func parseFrame(data []byte) string {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var in wsIncoming
		if err := json.Unmarshal(data, &in); err == nil {
			return in.Message
		}
	}
	return trimmed
}
