/**
* Name: 			service.go
* Description: 		포트폴리오 AI 채팅 처리
* Workflow: 		세션 조회/생성, 프로필 컨텍스트 구성, 최근 기록 + 메시지로 응답 생성, 대화 저장
 */

package assistant

import (
	"context"
	"errors"
	"strings"

	"PortfolioSite/internal/llm"
	"PortfolioSite/internal/models"
	"PortfolioSite/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("Gemini API key not configured")
	ErrEmptyMessage  = errors.New("Message is required")
)

const defaultHistoryLimit = 10

type Reply struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
}

type Service struct {
	responder    llm.Responder
	historyLimit int
}

// NewService returns a chat service. A nil responder makes every Ask fail
// with ErrNotConfigured.
func NewService(responder llm.Responder, historyLimit int) *Service {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &Service{responder: responder, historyLimit: historyLimit}
}

func (s *Service) Configured() bool {
	return s != nil && s.responder != nil
}

// Ask answers message within sessionID, creating the session when it is
// empty or unknown.
func (s *Service) Ask(ctx context.Context, sessionID, message string) (Reply, error) {
	if !s.Configured() {
		return Reply{}, ErrNotConfigured
	}
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyMessage
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	session, err := storage.GetOrCreateSession(sessionID)
	if err != nil {
		return Reply{}, err
	}

	var profile *models.Profile
	p, err := storage.GetProfile()
	switch {
	case err == nil:
		profile = &p
	case !errors.Is(err, storage.ErrNotFound):
		return Reply{}, err
	}

	history, err := storage.RecentChatMessages(session.ID, s.historyLimit)
	if err != nil {
		return Reply{}, err
	}

	response, err := s.responder.Reply(ctx, BuildSystemPrompt(profile), history, message)
	if err != nil {
		return Reply{}, err
	}

	if err := storage.AddChatExchange(session.ID, message, response); err != nil {
		return Reply{}, err
	}

	zap.L().Debug("Service.Ask(): answered",
		zap.String("session_id", sessionID),
		zap.Int("history", len(history)),
	)
	return Reply{SessionID: sessionID, Message: message, Response: response}, nil
}
