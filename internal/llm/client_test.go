package llm

import (
	"context"
	"errors"
	"testing"

	"PortfolioSite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubModels struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
	hadDeadline bool
}

func (s *stubModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.gotModel = model
	s.gotContents = contents
	s.gotConfig = config
	_, s.hadDeadline = ctx.Deadline()
	return s.resp, s.err
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: genai.RoleModel, Parts: parts}},
		},
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "  ", "")
	require.Error(t, err)
}

func TestNewGeminiClient_DefaultModel(t *testing.T) {
	orig := newGenaiClient
	defer func() { newGenaiClient = orig }()

	var gotCfg *genai.ClientConfig
	newGenaiClient = func(ctx context.Context, cfg *genai.ClientConfig) (*genai.Client, error) {
		gotCfg = cfg
		return &genai.Client{}, nil
	}

	client, err := NewGeminiClient(context.Background(), "key", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, client.model)
	require.NotNil(t, gotCfg)
	assert.Equal(t, "key", gotCfg.APIKey)
	assert.Equal(t, genai.BackendGeminiAPI, gotCfg.Backend)
}

func TestGeminiClient_Reply_MapsHistory(t *testing.T) {
	stub := &stubModels{resp: textResponse(
		&genai.Part{Text: "thinking...", Thought: true},
		&genai.Part{Text: " Hello there. "},
	)}
	client := &GeminiClient{models: stub, model: "gemini-test", timeout: defaultTimeout}

	reply, err := client.Reply(context.Background(), "You are an assistant.", []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "hi"},
		{Role: models.ChatRoleAssistant, Content: "hello"},
	}, "what do you do?")

	require.NoError(t, err)
	assert.Equal(t, "Hello there.", reply)
	assert.Equal(t, "gemini-test", stub.gotModel)
	assert.True(t, stub.hadDeadline)

	require.Len(t, stub.gotContents, 3)
	assert.Equal(t, genai.RoleUser, stub.gotContents[0].Role)
	assert.Equal(t, genai.RoleModel, stub.gotContents[1].Role)
	assert.Equal(t, genai.RoleUser, stub.gotContents[2].Role)
	assert.Equal(t, "what do you do?", stub.gotContents[2].Parts[0].Text)

	require.NotNil(t, stub.gotConfig.SystemInstruction)
	assert.Equal(t, "You are an assistant.", stub.gotConfig.SystemInstruction.Parts[0].Text)
	require.NotNil(t, stub.gotConfig.Temperature)
}

func TestGeminiClient_Reply_Errors(t *testing.T) {
	client := &GeminiClient{models: &stubModels{err: errors.New("quota")}, model: "m"}
	_, err := client.Reply(context.Background(), "", nil, "hi")
	assert.EqualError(t, err, "quota")

	client = &GeminiClient{models: &stubModels{resp: &genai.GenerateContentResponse{}}, model: "m"}
	_, err = client.Reply(context.Background(), "", nil, "hi")
	assert.ErrorIs(t, err, ErrEmptyReply)
}
