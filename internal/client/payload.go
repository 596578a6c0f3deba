/**
* Name: 			payload.go
* Description: 		/api/profile/ 원본 응답 타입
* Workflow: 		백엔드 버전마다 다른 미디어 필드 형태를 관대하게 디코딩
 */

package client

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// NullString decodes a JSON string. null, an absent key or any other JSON
// type leave it invalid instead of failing the whole payload.
type NullString struct {
	String string
	Valid  bool
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	*n = NullString{}
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n.String, n.Valid = s, true
	}
	return nil
}

func (n NullString) ptr() *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

// ApiPhotoURLs is the variant object {original, icon, normal, large}.
type ApiPhotoURLs struct {
	Original NullString `json:"original"`
	Icon     NullString `json:"icon"`
	Normal   NullString `json:"normal"`
	Large    NullString `json:"large"`

	present bool
}

func (p *ApiPhotoURLs) UnmarshalJSON(data []byte) error {
	*p = ApiPhotoURLs{}
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// 객체가 아닌 값은 없는 것으로 취급
		return nil
	}
	p.present = true
	_ = p.Original.UnmarshalJSON(raw["original"])
	_ = p.Icon.UnmarshalJSON(raw["icon"])
	_ = p.Normal.UnmarshalJSON(raw["normal"])
	_ = p.Large.UnmarshalJSON(raw["large"])
	return nil
}

func (p *ApiPhotoURLs) isPresent() bool {
	return p != nil && p.present
}

// ApiAvatar holds the `avatar` field, which is either a plain URL string or
// a variant object depending on the backend version. Any other non-null
// value still counts as present but carries no URL.
type ApiAvatar struct {
	URL      *string
	Variants *ApiPhotoURLs

	present bool
}

func (a *ApiAvatar) UnmarshalJSON(data []byte) error {
	*a = ApiAvatar{}
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	a.present = true
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.URL = &s
		return nil
	}
	var variants ApiPhotoURLs
	_ = variants.UnmarshalJSON(data)
	if variants.present {
		a.Variants = &variants
	}
	return nil
}

func (a *ApiAvatar) isPresent() bool {
	return a != nil && a.present
}

type Stat struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

type EducationItem struct {
	ID          int    `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
	Details     string `json:"details"`
	Order       int    `json:"order"`
}

type ApiSkillItem struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Order       int           `json:"order"`
	Photo       *ApiPhotoURLs `json:"photo"`
	PhotoURLs   *ApiPhotoURLs `json:"photo_urls"`
}

type ApiProject struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Technologies string     `json:"technologies"`
	GithubURL    string     `json:"github_url"`
	LiveURL      string     `json:"live_url"`
	Image        NullString `json:"image"`
	ImageURL     NullString `json:"image_url"`
	IsFeatured   bool       `json:"is_featured"`
	CreatedAt    string     `json:"created_at"`
}

type ApiProfile struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Subtitle   string          `json:"subtitle"`
	Summary    string          `json:"summary"`
	Email      string          `json:"email"`
	Github     string          `json:"github"`
	Linkedin   string          `json:"linkedin"`
	Avatar     *ApiAvatar      `json:"avatar"`
	AvatarURL  NullString      `json:"avatar_url"`
	AvatarURLs *ApiPhotoURLs   `json:"avatar_urls"`
	Stats      []Stat          `json:"stats"`
	Education  []EducationItem `json:"education"`
	Skills     []ApiSkillItem  `json:"skills"`
	Projects   []ApiProject    `json:"projects"`
}
