package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "https://api.example.com"

func strp(s string) *string { return &s }

func decodeProfile(t *testing.T, payload string) ApiProfile {
	t.Helper()
	var raw ApiProfile
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestResolveMediaURL(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  *string
	}{
		{"nil", nil, nil},
		{"empty", strp(""), nil},
		{"relative", strp("/media/x.png"), strp(testBase + "/media/x.png")},
		{"https", strp("https://cdn.example.com/a.png"), strp("https://cdn.example.com/a.png")},
		{"http", strp("http://cdn.example.com/a.png"), strp("http://cdn.example.com/a.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMediaURL(testBase, tt.value))
		})
	}
}

func TestResolveMediaURL_Idempotent(t *testing.T) {
	once := ResolveMediaURL(testBase, strp("/media/x.png"))
	twice := ResolveMediaURL(testBase, once)
	assert.Equal(t, once, twice)
}

func TestNormalize_AvatarPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *string
	}{
		{
			name:    "string avatar",
			payload: `{"avatar": "/media/avatars/me.png", "avatar_url": "/media/other.png"}`,
			want:    strp(testBase + "/media/avatars/me.png"),
		},
		{
			name:    "structured avatar prefers normal",
			payload: `{"avatar": {"original": "/o.png", "icon": "/i.png", "normal": "/n.png", "large": "/l.png"}}`,
			want:    strp(testBase + "/n.png"),
		},
		{
			name:    "structured avatar falls through empty variants",
			payload: `{"avatar": {"normal": "", "original": null, "icon": "https://cdn/i.png"}}`,
			want:    strp("https://cdn/i.png"),
		},
		{
			name:    "null avatar uses avatar_url",
			payload: `{"avatar": null, "avatar_url": "/media/flat.png"}`,
			want:    strp(testBase + "/media/flat.png"),
		},
		{
			name:    "absent avatar uses avatar_url",
			payload: `{"avatar_url": "https://cdn/flat.png", "avatar_urls": {"normal": "/n.png"}}`,
			want:    strp("https://cdn/flat.png"),
		},
		{
			name:    "avatar_urls last",
			payload: `{"avatar_urls": {"original": "/o.png", "large": "/l.png"}}`,
			want:    strp(testBase + "/o.png"),
		},
		{
			name:    "nothing",
			payload: `{}`,
			want:    nil,
		},
		{
			name:    "number avatar still shadows avatar_url",
			payload: `{"avatar": 42, "avatar_url": "/media/flat.png"}`,
			want:    nil,
		},
		{
			name:    "array avatar still shadows avatar_urls",
			payload: `{"avatar": ["/a.png"], "avatar_urls": {"normal": "/n.png"}}`,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Normalize(testBase, decodeProfile(t, tt.payload))
			assert.Equal(t, tt.want, profile.AvatarURL)
		})
	}
}

func TestNormalize_AvatarURLsResolvedIndependently(t *testing.T) {
	profile := Normalize(testBase, decodeProfile(t, `{
		"avatar_urls": {"original": "/o.png", "icon": null, "normal": "https://cdn/n.png", "large": ""}
	}`))

	require.NotNil(t, profile.AvatarURLs)
	assert.Equal(t, strp(testBase+"/o.png"), profile.AvatarURLs.Original)
	assert.Nil(t, profile.AvatarURLs.Icon)
	assert.Equal(t, strp("https://cdn/n.png"), profile.AvatarURLs.Normal)
	assert.Nil(t, profile.AvatarURLs.Large)
}

func TestNormalize_SkillPhotos(t *testing.T) {
	profile := Normalize(testBase, decodeProfile(t, `{
		"skills": [
			{"id": 1, "name": "Go", "photo": {"icon": "/go-i.png", "large": "/go-l.png"}, "photo_urls": {"icon": "/ignored.png"}},
			{"id": 2, "name": "SQL", "photo_urls": {"original": "https://cdn/sql.png"}},
			{"id": 3, "name": "Docker"},
			{"id": 4, "name": "K8s", "photo": "legacy.png", "photo_urls": {"normal": "/k8s.png"}}
		]
	}`))

	require.Len(t, profile.Skills, 4)

	goPhoto := profile.Skills[0].PhotoURLs
	require.NotNil(t, goPhoto)
	assert.Equal(t, strp(testBase+"/go-i.png"), goPhoto.Icon)
	assert.Equal(t, strp(testBase+"/go-l.png"), goPhoto.Large)
	assert.Nil(t, goPhoto.Original)
	assert.Nil(t, goPhoto.Normal)

	require.NotNil(t, profile.Skills[1].PhotoURLs)
	assert.Equal(t, strp("https://cdn/sql.png"), profile.Skills[1].PhotoURLs.Original)

	assert.Nil(t, profile.Skills[2].PhotoURLs)

	require.NotNil(t, profile.Skills[3].PhotoURLs)
	assert.Equal(t, strp(testBase+"/k8s.png"), profile.Skills[3].PhotoURLs.Normal)
}

func TestNormalize_ProjectImage(t *testing.T) {
	profile := Normalize(testBase, decodeProfile(t, `{
		"projects": [
			{"id": 1, "image_url": "/media/p1.png", "image": "/media/ignored.png"},
			{"id": 2, "image": "https://cdn/p2.png"},
			{"id": 3, "image_url": null, "image": null},
			{"id": 4}
		]
	}`))

	require.Len(t, profile.Projects, 4)
	assert.Equal(t, testBase+"/media/p1.png", profile.Projects[0].ImageURL)
	assert.Equal(t, "https://cdn/p2.png", profile.Projects[1].ImageURL)
	assert.Equal(t, "", profile.Projects[2].ImageURL)
	assert.Equal(t, "", profile.Projects[3].ImageURL)
}

func TestNormalize_KeepsArrivalOrder(t *testing.T) {
	profile := Normalize(testBase, decodeProfile(t, `{
		"stats": [{"id": 1, "order": 3}, {"id": 2, "order": 1}],
		"education": [{"id": 7, "order": 9}, {"id": 8, "order": 0}],
		"skills": [{"id": 5, "order": 2}, {"id": 6, "order": 1}]
	}`))

	assert.Equal(t, 1, profile.Stats[0].ID)
	assert.Equal(t, 7, profile.Education[0].ID)
	assert.Equal(t, 5, profile.Skills[0].ID)
}

func TestNormalize_EmptyPayloadIsTotal(t *testing.T) {
	profile := Normalize(testBase, ApiProfile{})

	assert.Nil(t, profile.AvatarURL)
	assert.Nil(t, profile.AvatarURLs)
	assert.NotNil(t, profile.Stats)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Projects)

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"avatar_url":null`)
	assert.Contains(t, string(data), `"stats":[]`)
}

func TestNormalize_TrailingSlashBase(t *testing.T) {
	profile := Normalize(testBase+"/", decodeProfile(t, `{"avatar": "/media/me.png"}`))
	assert.Equal(t, strp(testBase+"/media/me.png"), profile.AvatarURL)
}
