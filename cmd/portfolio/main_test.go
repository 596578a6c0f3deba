package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/profile/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "Dayanch", "role": "Engineer", "avatar": "/media/a.jpg", "projects": [{"title": "Site", "image": "/media/p.jpg"}]}`))
	})
	mux.HandleFunc("/api/ai-chat/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"response":   "echo: " + body["message"],
			"session_id": "s-1",
			"message":    body["message"],
		})
	})
	mux.HandleFunc("/api/messages/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestProfileCommand(t *testing.T) {
	srv := fakeAPI(t)

	out, err := execute(t, "", "profile", "--api-base", srv.URL+"/")
	require.NoError(t, err)

	var profile map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, "Dayanch", profile["name"])
	assert.Equal(t, srv.URL+"/media/a.jpg", profile["avatar_url"])
}

func TestProfileCommand_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := execute(t, "", "profile", "--api-base", srv.URL)
	assert.EqualError(t, err, "Failed to load profile")
}

func TestChatCommand(t *testing.T) {
	srv := fakeAPI(t)

	out, err := execute(t, "hello\n\nsecond\n/quit\n", "chat", "--api-base", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "ai> Hi! Ask me about my experience, projects, or skills.")
	assert.Contains(t, out, "ai> echo: hello")
	assert.Contains(t, out, "ai> echo: second")
}

func TestTimeoutIsOptIn(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("timeout")
	require.NotNil(t, flag)
	assert.Equal(t, "0s", flag.DefValue)

	orig := timeout
	defer func() { timeout = orig }()

	timeout = 0
	assert.Same(t, http.DefaultClient, httpClient())

	timeout = 5 * time.Second
	assert.Equal(t, 5*time.Second, httpClient().Timeout)
}

func TestContactCommand(t *testing.T) {
	srv := fakeAPI(t)

	out, err := execute(t, "", "contact", "--api-base", srv.URL,
		"--name", "Ada", "--email", "ada@example.com", "--message", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "Thanks! Your message has been sent.")
}
