package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"PortfolioSite/internal/models"
	"PortfolioSite/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// /api/messages/ 요청 바디
type MessageRequest struct {
	Name    string `json:"name" binding:"required,max=200" example:"Ada"`
	Email   string `json:"email" binding:"required,email" example:"ada@example.com"`
	Subject string `json:"subject" binding:"max=300" example:"Job opportunity"`
	Message string `json:"message" binding:"required" example:"Let's talk"`
}

type MarkReadRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// 필드별 오류 메시지 목록
type FieldErrorsResponse map[string][]string

// CreateMessage godoc
// @Summary      연락처 메시지 전송
// @Description  방문자가 보낸 연락처 폼 메시지를 저장합니다.
// @Tags         Portfolio
// @Accept       json
// @Produce      json
// @Param        request body handler.MessageRequest true "메시지 내용"
// @Success      201 {object} models.Message
// @Failure      400 {object} handler.FieldErrorsResponse "필드 검증 실패"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/messages/ [post]
func CreateMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, fieldErrors(verrs))
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	msg, err := storage.CreateMessage(models.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	})
	if err != nil {
		zap.L().Error("CreateMessage(): storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	zap.L().Info("CreateMessage(): new contact message", zap.Int64("id", msg.ID))
	c.JSON(http.StatusCreated, msg)
}

// ListMessages godoc
// @Summary      연락처 메시지 목록 (관리자)
// @Description  최신순으로 메시지를 반환합니다. is_read로 필터링할 수 있습니다.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        is_read query    bool false "읽음 여부 필터"
// @Success      200     {array}  models.Message
// @Failure      400     {object} handler.ErrorResponse
// @Failure      401     {object} handler.ErrorResponse
// @Failure      500     {object} handler.ErrorResponse
// @Router       /api/admin/messages [get]
func ListMessages(c *gin.Context) {
	var filter *bool
	if raw, ok := c.GetQuery("is_read"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_read must be a boolean"})
			return
		}
		filter = &v
	}

	messages, err := storage.ListMessages(filter)
	if err != nil {
		zap.L().Error("ListMessages(): storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead godoc
// @Summary      메시지 읽음 표시 (관리자)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path     int                     true "메시지 ID"
// @Param        request body     handler.MarkReadRequest true "읽음 여부"
// @Success      200     {object} handler.SuccessResponse
// @Failure      400     {object} handler.ErrorResponse
// @Failure      404     {object} handler.ErrorResponse
// @Router       /api/admin/messages/{id} [patch]
func MarkMessageRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_read is required"})
		return
	}

	if err := storage.SetMessageRead(id, *req.IsRead); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		zap.L().Error("MarkMessageRead(): storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message updated"})
}

// fieldErrors 검증 오류를 JSON 필드명 기준 메시지로 변환
func fieldErrors(verrs validator.ValidationErrors) FieldErrorsResponse {
	out := FieldErrorsResponse{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required."
		case "email":
			msg = "Enter a valid email address."
		case "max":
			msg = "Ensure this field has no more than " + fe.Param() + " characters."
		default:
			msg = "Invalid value."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
