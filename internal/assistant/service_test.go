package assistant

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"PortfolioSite/internal/models"
	"PortfolioSite/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponder struct {
	reply string
	err   error

	calls      int
	gotPrompt  string
	gotHistory []models.ChatMessage
	gotMessage string
}

func (s *stubResponder) Reply(ctx context.Context, systemPrompt string, history []models.ChatMessage, message string) (string, error) {
	s.calls++
	s.gotPrompt = systemPrompt
	s.gotHistory = history
	s.gotMessage = message
	return s.reply, s.err
}

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, storage.InitDB(filepath.Join(t.TempDir(), "assistant.db")))
	t.Cleanup(func() { _ = storage.CloseDB() })
}

func TestBuildSystemPrompt(t *testing.T) {
	assert.Empty(t, BuildSystemPrompt(nil))

	prompt := BuildSystemPrompt(&models.Profile{
		Name:    "Dayanch",
		Role:    "Backend Engineer",
		Summary: "Builds APIs.",
		Email:   "me@example.com",
		Education: []models.Education{
			{Degree: "BSc", Institution: "Uni", Year: "2020", GPA: "3.9"},
			{Degree: "MSc", Institution: "Tech", Year: "2022"},
		},
		Skills:   []models.SkillCategory{{Name: "Go", Description: "Services"}},
		Projects: []models.Project{{Title: "Site", Description: "Portfolio", Technologies: "Go, SQLite"}},
	})

	assert.True(t, strings.HasPrefix(prompt, "You are an AI assistant for Dayanch's portfolio website."))
	assert.Contains(t, prompt, "Email: me@example.com")
	assert.Contains(t, prompt, "- BSc from Uni (2020), GPA: 3.9\n")
	assert.Contains(t, prompt, "- MSc from Tech (2022)\n")
	assert.Contains(t, prompt, "- Go: Services")
	assert.Contains(t, prompt, "  Technologies: Go, SQLite")
	assert.Contains(t, prompt, "5. If asked about something not in the portfolio")
	assert.True(t, strings.HasSuffix(prompt, "Please provide concise, helpful responses."))
}

func TestAsk_NotConfigured(t *testing.T) {
	_, err := NewService(nil, 0).Ask(context.Background(), "", "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAsk_EmptyMessage(t *testing.T) {
	stub := &stubResponder{reply: "x"}
	_, err := NewService(stub, 0).Ask(context.Background(), "", "  ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Zero(t, stub.calls)
}

func TestAsk_CreatesSessionAndStoresExchange(t *testing.T) {
	setupDB(t)
	stub := &stubResponder{reply: "I build APIs."}
	svc := NewService(stub, 10)

	reply, err := svc.Ask(context.Background(), "", "what do you do?")
	require.NoError(t, err)

	assert.NotEmpty(t, reply.SessionID)
	assert.Equal(t, "what do you do?", reply.Message)
	assert.Equal(t, "I build APIs.", reply.Response)
	assert.Empty(t, stub.gotPrompt)
	assert.Empty(t, stub.gotHistory)

	session, err := storage.GetSessionWithMessages(reply.SessionID)
	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, models.ChatRoleUser, session.Messages[0].Role)
	assert.Equal(t, "I build APIs.", session.Messages[1].Content)
}

func TestAsk_UsesProfileAndRecentHistory(t *testing.T) {
	setupDB(t)
	_, err := storage.SaveProfile(models.Profile{Name: "Dayanch", Role: "Engineer"})
	require.NoError(t, err)

	stub := &stubResponder{reply: "ok"}
	svc := NewService(stub, 4)

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.Ask(context.Background(), "sess-1", text)
		require.NoError(t, err)
	}

	assert.Contains(t, stub.gotPrompt, "Dayanch's portfolio")
	assert.Equal(t, "three", stub.gotMessage)
	require.Len(t, stub.gotHistory, 4)
	assert.Equal(t, "one", stub.gotHistory[0].Content)
	assert.Equal(t, "two", stub.gotHistory[2].Content)
}

func TestAsk_ResponderErrorStoresNothing(t *testing.T) {
	setupDB(t)
	stub := &stubResponder{err: errors.New("quota")}

	_, err := NewService(stub, 0).Ask(context.Background(), "sess-2", "hi")
	assert.EqualError(t, err, "quota")

	session, err := storage.GetSessionWithMessages("sess-2")
	require.NoError(t, err)
	assert.Empty(t, session.Messages)
}
