/**
* Name: 			chat.go
* Description: 		AI 채팅 세션 클라이언트
* Workflow: 		대화 기록 유지, 단일 요청 보장, 서버 세션 ID 보존
 */

package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type Role string

const (
	RoleAI   Role = "ai"
	RoleUser Role = "user"
)

const (
	Greeting     = "Hi! Ask me about my experience, projects, or skills."
	ChatFailText = "Sorry, I encountered an error. Please try again."
)

type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response  *string `json:"response"`
	SessionID string  `json:"session_id"`
	Message   string  `json:"message"`
}

// Chat performs one exchange with the chat endpoint. An empty sessionID is
// left out of the request body.
func (c *Client) Chat(ctx context.Context, message, sessionID string) (ChatResponse, error) {
	var resp ChatResponse
	err := c.doJSON(ctx, http.MethodPost, chatPath, ChatRequest{
		Message:   message,
		SessionID: sessionID,
	}, &resp)
	if err != nil {
		return ChatResponse{}, err
	}
	if resp.Response == nil {
		return ChatResponse{}, fmt.Errorf("%w: %s: missing response field", ErrMalformed, chatPath)
	}
	return resp, nil
}

// Session keeps the transcript and the server-assigned session id for one
// chat widget lifetime. At most one request is outstanding at a time.
type Session struct {
	client *Client

	mu        sync.Mutex
	messages  []Message
	sessionID string
	sending   bool
	closed    bool
}

func NewSession(c *Client) *Session {
	return &Session{
		client:   c,
		messages: []Message{{Role: RoleAI, Text: Greeting}},
	}
}

// Send appends text as a user message and waits for the reply. It returns
// false without touching the transcript when text is blank, a request is
// already in flight or the session is closed.
func (s *Session) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	if text == "" || s.sending || s.closed {
		s.mu.Unlock()
		return false
	}
	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})
	s.sending = true
	sessionID := s.sessionID
	s.mu.Unlock()

	defer s.release()

	resp, err := s.client.Chat(ctx, text, sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}
	if err != nil {
		zap.L().Warn("Session.Send(): chat request failed", zap.Error(err))
		s.messages = append(s.messages, Message{Role: RoleAI, Text: ChatFailText})
		return true
	}
	// 처음 받은 세션 ID만 채택, 이후 서버 값은 무시
	if s.sessionID == "" && resp.SessionID != "" {
		s.sessionID = resp.SessionID
	}
	s.messages = append(s.messages, Message{Role: RoleAI, Text: *resp.Response})
	return true
}

func (s *Session) release() {
	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()
}

// Close discards the session. A reply that settles afterwards is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}
