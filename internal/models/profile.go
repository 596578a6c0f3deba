package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// MediaSet holds media-root relative paths of one uploaded image and its
// resized variants. Stored as a JSON text column.
type MediaSet struct {
	Original string `json:"original"`
	Icon     string `json:"icon"`
	Normal   string `json:"normal"`
	Large    string `json:"large"`
}

func (m MediaSet) IsZero() bool {
	return m == MediaSet{}
}

func (m MediaSet) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *MediaSet) Scan(src any) error {
	*m = MediaSet{}
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), m)
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, m)
	}
	return errors.New("MediaSet.Scan(): unsupported column type")
}

type Profile struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Subtitle  string          `json:"subtitle"`
	Summary   string          `json:"summary"`
	Email     string          `json:"email"`
	Github    string          `json:"github"`
	Linkedin  string          `json:"linkedin"`
	Avatar    MediaSet        `json:"avatar"`
	Stats     []Stat          `json:"stats"`
	Education []Education     `json:"education"`
	Skills    []SkillCategory `json:"skills"`
	Projects  []Project       `json:"projects"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Stat struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

type Education struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
	Details     string `json:"details"`
	Order       int    `json:"order"`
}

type SkillCategory struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Photo       MediaSet `json:"photo"`
	Order       int      `json:"order"`
}

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	GithubURL    string    `json:"github_url"`
	LiveURL      string    `json:"live_url"`
	ImageURL     string    `json:"image_url"`
	Order        int       `json:"order"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
}
