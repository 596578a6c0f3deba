package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"PortfolioSite/internal/models"
	"PortfolioSite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 공개 프로필 응답. 미디어 필드는 MEDIA_URL 기준 경로로 내보냄
type ProfileResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Role       string             `json:"role"`
	Subtitle   string             `json:"subtitle"`
	Summary    string             `json:"summary"`
	Email      string             `json:"email"`
	Github     string             `json:"github"`
	Linkedin   string             `json:"linkedin"`
	AvatarURL  *string            `json:"avatar_url"`
	AvatarURLs *PhotoURLsResponse `json:"avatar_urls"`
	Stats      []models.Stat      `json:"stats"`
	Education  []models.Education `json:"education"`
	Skills     []SkillResponse    `json:"skills"`
	Projects   []ProjectResponse  `json:"projects"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type PhotoURLsResponse struct {
	Original *string `json:"original"`
	Icon     *string `json:"icon"`
	Normal   *string `json:"normal"`
	Large    *string `json:"large"`
}

type SkillResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	PhotoURLs   *PhotoURLsResponse `json:"photo_urls"`
	Order       int                `json:"order"`
}

type ProjectResponse struct {
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

// GetProfile godoc
// @Summary      포트폴리오 프로필 조회
// @Description  통계, 학력, 스킬, 프로젝트를 포함한 첫 번째 프로필을 반환합니다.
// @Tags         Portfolio
// @Produce      json
// @Success      200 {object} handler.ProfileResponse
// @Failure      404 {object} handler.ErrorResponse "프로필 없음"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profile/ [get]
func GetProfile(c *gin.Context) {
	profile, err := storage.GetProfile()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		zap.L().Error("GetProfile(): storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile, current().MediaURL))
}

// UpdateProfile godoc
// @Summary      프로필 저장 (관리자)
// @Description  프로필 문서 전체를 저장합니다. 하위 목록은 요청 내용으로 교체됩니다.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.Profile true "프로필 문서"
// @Success      200 {object} models.Profile
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/admin/profile [put]
func UpdateProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(profile.Name) == "" || strings.TrimSpace(profile.Role) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and Role cannot be empty"})
		return
	}

	saved, err := storage.SaveProfile(profile)
	if err != nil {
		zap.L().Error("UpdateProfile(): storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	zap.L().Info("UpdateProfile(): profile saved",
		zap.String("admin", c.GetString("username")),
		zap.Int64("profile_id", saved.ID),
	)
	c.JSON(http.StatusOK, saved)
}

func toProfileResponse(p models.Profile, mediaURL string) ProfileResponse {
	resp := ProfileResponse{
		ID:         p.ID,
		Name:       p.Name,
		Role:       p.Role,
		Subtitle:   p.Subtitle,
		Summary:    p.Summary,
		Email:      p.Email,
		Github:     p.Github,
		Linkedin:   p.Linkedin,
		AvatarURL:  mediaPath(mediaURL, firstNonEmpty(p.Avatar.Original, p.Avatar.Normal, p.Avatar.Large, p.Avatar.Icon)),
		AvatarURLs: photoURLs(mediaURL, p.Avatar),
		Stats:      p.Stats,
		Education:  p.Education,
		Skills:     make([]SkillResponse, 0, len(p.Skills)),
		Projects:   make([]ProjectResponse, 0, len(p.Projects)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if resp.Stats == nil {
		resp.Stats = []models.Stat{}
	}
	if resp.Education == nil {
		resp.Education = []models.Education{}
	}

	for _, s := range p.Skills {
		resp.Skills = append(resp.Skills, SkillResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			PhotoURLs:   photoURLs(mediaURL, s.Photo),
			Order:       s.Order,
		})
	}
	for _, pr := range p.Projects {
		image := ""
		if u := mediaPath(mediaURL, pr.ImageURL); u != nil {
			image = *u
		}
		resp.Projects = append(resp.Projects, ProjectResponse{
			ID:           pr.ID,
			Title:        pr.Title,
			Description:  pr.Description,
			Technologies: pr.Technologies,
			GithubURL:    pr.GithubURL,
			LiveURL:      pr.LiveURL,
			ImageURL:     image,
			Order:        pr.Order,
			IsFeatured:   pr.IsFeatured,
			CreatedAt:    pr.CreatedAt,
		})
	}
	return resp
}

func photoURLs(mediaURL string, set models.MediaSet) *PhotoURLsResponse {
	if set.IsZero() {
		return nil
	}
	return &PhotoURLsResponse{
		Original: mediaPath(mediaURL, set.Original),
		Icon:     mediaPath(mediaURL, set.Icon),
		Normal:   mediaPath(mediaURL, set.Normal),
		Large:    mediaPath(mediaURL, set.Large),
	}
}

// mediaPath 저장 경로를 MEDIA_URL 아래 경로로 변환. 절대 URL과 이미 루트 기준인 경로는 그대로 둠
func mediaPath(mediaURL, rel string) *string {
	if rel == "" {
		return nil
	}
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") || strings.HasPrefix(rel, "/") {
		return &rel
	}
	p := mediaURL + rel
	return &p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
