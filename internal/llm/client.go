/**
* Name: 			client.go
* Description: 		Gemini 응답 생성 클라이언트
* Workflow: 		시스템 프롬프트 + 대화 기록 + 사용자 메시지 전송, 응답 텍스트 반환
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"PortfolioSite/internal/models"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	defaultTimeout = 60 * time.Second
	temperature    = 0.7
)

var ErrEmptyReply = errors.New("model returned an empty reply")

// Responder produces the assistant reply for one chat turn.
type Responder interface {
	Reply(ctx context.Context, systemPrompt string, history []models.ChatMessage, message string) (string, error)
}

type modelsClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var newGenaiClient = func(ctx context.Context, cfg *genai.ClientConfig) (*genai.Client, error) {
	return genai.NewClient(ctx, cfg)
}

type GeminiClient struct {
	models  modelsClient
	model   string
	timeout time.Duration
}

// NewGeminiClient returns a Gemini responder authenticated by API key.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("NewGeminiClient(): gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	client, err := newGenaiClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiClient(): failed to create genai client: %w", err)
	}

	zap.L().Info("NewGeminiClient(): gemini client ready", zap.String("model", model))
	return &GeminiClient{
		models:  client.Models,
		model:   model,
		timeout: defaultTimeout,
	}, nil
}

func (g *GeminiClient) Reply(ctx context.Context, systemPrompt string, history []models.ChatMessage, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == models.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, textContent(role, m.Content))
	}
	contents = append(contents, textContent(genai.RoleUser, message))

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	}
	if strings.TrimSpace(systemPrompt) != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	callCtx := ctx
	if _, ok := ctx.Deadline(); !ok && g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(callCtx, g.model, contents, config)
	if err != nil {
		zap.L().Error("GeminiClient.Reply(): GenerateContent failed", zap.Error(err))
		return "", err
	}

	text := strings.TrimSpace(visibleText(resp))
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{
		Role:  role,
		Parts: []*genai.Part{{Text: text}},
	}
}

// 첫 후보의 텍스트 파트만 이어 붙임 (thought 파트 제외)
func visibleText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
