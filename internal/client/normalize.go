/**
* Name: 			normalize.go
* Description: 		원본 프로필 응답을 화면용 정규 형태로 변환
* Workflow: 		미디어 URL 절대화, 필드별 우선순위 해석, 슬라이스 기본값
 */

package client

import "strings"

// PhotoURLs is the canonical variant set. Each entry is nil or absolute.
type PhotoURLs struct {
	Original *string `json:"original"`
	Icon     *string `json:"icon"`
	Normal   *string `json:"normal"`
	Large    *string `json:"large"`
}

type SkillItem struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
	PhotoURLs   *PhotoURLs `json:"photo_urls"`
}

type Project struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	GithubURL    string `json:"github_url"`
	LiveURL      string `json:"live_url"`
	ImageURL     string `json:"image_url"`
	IsFeatured   bool   `json:"is_featured"`
	CreatedAt    string `json:"created_at"`
}

// Profile is the read-only snapshot consumed by display code.
type Profile struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Subtitle   string          `json:"subtitle"`
	Summary    string          `json:"summary"`
	Email      string          `json:"email"`
	Github     string          `json:"github"`
	Linkedin   string          `json:"linkedin"`
	AvatarURL  *string         `json:"avatar_url"`
	AvatarURLs *PhotoURLs      `json:"avatar_urls"`
	Stats      []Stat          `json:"stats"`
	Education  []EducationItem `json:"education"`
	Skills     []SkillItem     `json:"skills"`
	Projects   []Project       `json:"projects"`
}

var absoluteSchemes = []string{"http://", "https://"}

// ResolveMediaURL returns nil for a missing or empty value, the value itself
// when it is already absolute, and base+value otherwise.
func ResolveMediaURL(base string, value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	for _, scheme := range absoluteSchemes {
		if strings.HasPrefix(*value, scheme) {
			out := *value
			return &out
		}
	}
	out := base + *value
	return &out
}

// 아바타 변형 우선순위: normal, original, icon, large
func firstVariant(p *ApiPhotoURLs) *string {
	for _, v := range []NullString{p.Normal, p.Original, p.Icon, p.Large} {
		if v.Valid && v.String != "" {
			return v.ptr()
		}
	}
	return nil
}

// resolveAvatar applies the avatar precedence:
//  1. `avatar` (variant object or plain string)
//  2. `avatar_url`
//  3. `avatar_urls`
//
// A present `avatar` shadows the later keys even when it yields nothing.
func resolveAvatar(base string, raw ApiProfile) *string {
	switch {
	case raw.Avatar.isPresent():
		if raw.Avatar.Variants != nil {
			return ResolveMediaURL(base, firstVariant(raw.Avatar.Variants))
		}
		return ResolveMediaURL(base, raw.Avatar.URL)
	case raw.AvatarURL.Valid:
		return ResolveMediaURL(base, raw.AvatarURL.ptr())
	case raw.AvatarURLs.isPresent():
		return ResolveMediaURL(base, firstVariant(raw.AvatarURLs))
	}
	return nil
}

func resolvePhotoURLs(base string, p *ApiPhotoURLs) *PhotoURLs {
	if !p.isPresent() {
		return nil
	}
	return &PhotoURLs{
		Original: ResolveMediaURL(base, p.Original.ptr()),
		Icon:     ResolveMediaURL(base, p.Icon.ptr()),
		Normal:   ResolveMediaURL(base, p.Normal.ptr()),
		Large:    ResolveMediaURL(base, p.Large.ptr()),
	}
}

// 스킬 사진 키: photo, photo_urls 순
func resolveSkillPhoto(base string, skill ApiSkillItem) *PhotoURLs {
	if skill.Photo.isPresent() {
		return resolvePhotoURLs(base, skill.Photo)
	}
	return resolvePhotoURLs(base, skill.PhotoURLs)
}

// Project images fall back to "" rather than nil; display code relies on it.
func resolveProjectImage(base string, project ApiProject) string {
	source := project.ImageURL
	if !source.Valid {
		source = project.Image
	}
	if url := ResolveMediaURL(base, source.ptr()); url != nil {
		return *url
	}
	return ""
}

// Normalize converts a raw payload into the canonical Profile. It never
// fails and never reorders stats, education or skills.
func Normalize(base string, raw ApiProfile) Profile {
	base = strings.TrimRight(base, "/")

	profile := Profile{
		ID:         raw.ID,
		Name:       raw.Name,
		Role:       raw.Role,
		Subtitle:   raw.Subtitle,
		Summary:    raw.Summary,
		Email:      raw.Email,
		Github:     raw.Github,
		Linkedin:   raw.Linkedin,
		AvatarURL:  resolveAvatar(base, raw),
		AvatarURLs: resolvePhotoURLs(base, raw.AvatarURLs),
		Stats:      append([]Stat{}, raw.Stats...),
		Education:  append([]EducationItem{}, raw.Education...),
		Skills:     make([]SkillItem, 0, len(raw.Skills)),
		Projects:   make([]Project, 0, len(raw.Projects)),
	}

	for _, skill := range raw.Skills {
		profile.Skills = append(profile.Skills, SkillItem{
			ID:          skill.ID,
			Name:        skill.Name,
			Description: skill.Description,
			Order:       skill.Order,
			PhotoURLs:   resolveSkillPhoto(base, skill),
		})
	}

	for _, project := range raw.Projects {
		profile.Projects = append(profile.Projects, Project{
			ID:           project.ID,
			Title:        project.Title,
			Description:  project.Description,
			Technologies: project.Technologies,
			GithubURL:    project.GithubURL,
			LiveURL:      project.LiveURL,
			ImageURL:     resolveProjectImage(base, project),
			IsFeatured:   project.IsFeatured,
			CreatedAt:    project.CreatedAt,
		})
	}

	return profile
}
