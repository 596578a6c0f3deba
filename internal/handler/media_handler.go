package handler

import (
	"errors"
	"net/http"

	"PortfolioSite/internal/media"
	"PortfolioSite/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 업로드 결과. paths는 프로필 문서에 넣을 저장 경로, urls는 바로 쓸 수 있는 경로
type MediaUploadResponse struct {
	Paths models.MediaSet    `json:"paths"`
	URLs  *PhotoURLsResponse `json:"urls"`
}

// UploadMedia godoc
// @Summary      이미지 업로드 (관리자)
// @Description  이미지를 저장하고 icon(64), normal(512), large(1280) 변형을 생성합니다. 긴 변 기준이며 확대하지 않습니다.
// @Tags         Admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind query    string true "avatars | skill_photos | projects"
// @Param        file formData file   true "이미지 파일"
// @Success      201  {object} handler.MediaUploadResponse
// @Failure      400  {object} handler.ErrorResponse
// @Failure      413  {object} handler.ErrorResponse
// @Failure      500  {object} handler.ErrorResponse
// @Router       /api/admin/media [post]
func UploadMedia(c *gin.Context) {
	d := current()
	if d.Media == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Media storage not configured"})
		return
	}

	kind := c.Query("kind")
	if !media.Kinds[kind] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be one of avatars, skill_photos, projects"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	set, err := d.Media.SaveImage(kind, file)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported or corrupt image"})
		case errors.Is(err, media.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			zap.L().Error("UploadMedia(): save failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		}
		return
	}

	c.JSON(http.StatusCreated, MediaUploadResponse{Paths: set, URLs: photoURLs(d.MediaURL, set)})
}
