package storage

import (
	"path/filepath"
	"testing"
	"time"

	"PortfolioSite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { _ = CloseDB() })
}

func sampleProfile() models.Profile {
	return models.Profile{
		Name:    "Dayanch",
		Role:    "Backend Engineer",
		Summary: "Builds APIs.",
		Email:   "me@example.com",
		Avatar:  models.MediaSet{Original: "avatars/a.jpg", Normal: "avatars/a_normal.jpg"},
		Stats: []models.Stat{
			{Value: "10", Label: "Projects", Order: 2},
			{Value: "5+", Label: "Years", Order: 1},
		},
		Education: []models.Education{
			{Degree: "BSc", Institution: "Uni", Year: "2020", GPA: "3.9", Order: 0},
		},
		Skills: []models.SkillCategory{
			{Name: "Go", Description: "Services", Order: 1, Photo: models.MediaSet{Icon: "skill_photos/go_icon.jpg"}},
			{Name: "SQL", Description: "Queries", Order: 0},
		},
		Projects: []models.Project{
			{Title: "Side", Order: 0},
			{Title: "Main", Order: 5, IsFeatured: true, ImageURL: "https://cdn/main.png"},
		},
	}
}

func TestGetProfile_Empty(t *testing.T) {
	setupDB(t)

	_, err := GetProfile()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveProfile_RoundTripAndOrdering(t *testing.T) {
	setupDB(t)

	saved, err := SaveProfile(sampleProfile())
	require.NoError(t, err)

	assert.NotZero(t, saved.ID)
	assert.Equal(t, "avatars/a_normal.jpg", saved.Avatar.Normal)
	require.Len(t, saved.Stats, 2)
	assert.Equal(t, "Years", saved.Stats[0].Label)
	require.Len(t, saved.Skills, 2)
	assert.Equal(t, "SQL", saved.Skills[0].Name)
	assert.True(t, saved.Skills[1].Photo.Original == "" && saved.Skills[1].Photo.Icon == "skill_photos/go_icon.jpg")
	assert.True(t, saved.Skills[0].Photo.IsZero())
	require.Len(t, saved.Projects, 2)
	assert.Equal(t, "Main", saved.Projects[0].Title)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestSaveProfile_ReplacesChildrenAndKeepsID(t *testing.T) {
	setupDB(t)

	first, err := SaveProfile(sampleProfile())
	require.NoError(t, err)

	next := sampleProfile()
	next.Name = "Renamed"
	next.Stats = []models.Stat{{Value: "1", Label: "Only"}}
	next.Projects = nil

	second, err := SaveProfile(next)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed", second.Name)
	assert.Len(t, second.Stats, 1)
	assert.Empty(t, second.Projects)
	assert.NotNil(t, second.Projects)
}

func TestSaveProfile_ResaveKeepsProjectIdentity(t *testing.T) {
	setupDB(t)

	first, err := SaveProfile(sampleProfile())
	require.NoError(t, err)
	require.Len(t, first.Projects, 2)

	time.Sleep(5 * time.Millisecond)
	second, err := SaveProfile(first)
	require.NoError(t, err)
	require.Len(t, second.Projects, 2)

	for i := range first.Projects {
		assert.Equal(t, first.Projects[i].ID, second.Projects[i].ID)
		assert.True(t, first.Projects[i].CreatedAt.Equal(second.Projects[i].CreatedAt))
	}
	assert.Equal(t, first.Stats[0].ID, second.Stats[0].ID)
	assert.Equal(t, first.Skills[0].ID, second.Skills[0].ID)

	// 새로 추가한 프로젝트만 새 id와 현재 시각
	third := second
	third.Projects = append(third.Projects, models.Project{Title: "New", Order: 9})
	saved, err := SaveProfile(third)
	require.NoError(t, err)
	require.Len(t, saved.Projects, 3)
	added := saved.Projects[2]
	assert.Equal(t, "New", added.Title)
	assert.NotZero(t, added.ID)
	assert.True(t, added.CreatedAt.After(first.Projects[0].CreatedAt))
}

func TestMessages(t *testing.T) {
	setupDB(t)

	first, err := CreateMessage(models.Message{Name: "A", Email: "a@x.io", Message: "one"})
	require.NoError(t, err)
	second, err := CreateMessage(models.Message{Name: "B", Email: "b@x.io", Subject: "hi", Message: "two"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, second.CreatedAt.IsZero())

	all, err := ListMessages(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	require.NoError(t, SetMessageRead(first.ID, true))
	assert.ErrorIs(t, SetMessageRead(999, true), ErrNotFound)

	read := true
	onlyRead, err := ListMessages(&read)
	require.NoError(t, err)
	require.Len(t, onlyRead, 1)
	assert.Equal(t, first.ID, onlyRead[0].ID)
	assert.True(t, onlyRead[0].IsRead)
}

func TestChatSessions(t *testing.T) {
	setupDB(t)

	_, err := GetSession("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	s, err := GetOrCreateSession("abc")
	require.NoError(t, err)
	again, err := GetOrCreateSession("abc")
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, AddChatExchange(s.ID, text, "re: "+text))
	}

	recent, err := RecentChatMessages(s.ID, 4)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	assert.Equal(t, "two", recent[0].Content)
	assert.Equal(t, models.ChatRoleUser, recent[0].Role)
	assert.Equal(t, "re: three", recent[3].Content)
	assert.Equal(t, models.ChatRoleAssistant, recent[3].Role)

	full, err := GetSessionWithMessages("abc")
	require.NoError(t, err)
	assert.Len(t, full.Messages, 6)
	assert.Equal(t, "one", full.Messages[0].Content)

	sessions, err := ListSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "abc", sessions[0].SessionID)
}

func TestUsers(t *testing.T) {
	setupDB(t)

	user, err := CreateUser("admin", "hash")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	_, err = CreateUser("admin", "other")
	assert.ErrorIs(t, err, ErrUsernameExists)

	got, err := GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
