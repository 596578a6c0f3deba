package handler

import (
	"strings"

	"PortfolioSite/internal/config"
	"PortfolioSite/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes 공개 API, 관리자 API, WebSocket, 미디어, 문서 경로 등록
func RegisterRoutes(router *gin.Engine, cfg config.Config) {
	chatLimit := middleware.RateLimitByIP(cfg.ChatRatePerMin)

	public := router.Group("/api")
	{
		public.GET("/health/", Health)
		public.GET("/profile/", GetProfile)
		public.POST("/messages/", CreateMessage)
		public.POST("/ai-chat/", chatLimit, AIChat)
		public.GET("/chat-history/:session_id/", GetChatHistory)
	}

	router.GET("/ws/chat", chatLimit, HandleChatConnection)

	admin := router.Group("/admin")
	{
		admin.POST("/signup", middleware.InviteCodeMiddleware(cfg.InviteCode), Signup)
		admin.POST("/login", Login)
	}

	protected := router.Group("/api/admin").Use(middleware.AuthMiddleware())
	{
		protected.GET("/messages", ListMessages)
		protected.PATCH("/messages/:id", MarkMessageRead)
		protected.PUT("/profile", UpdateProfile)
		protected.POST("/media", UploadMedia)
		protected.GET("/chat-sessions", ListChatSessions)
	}

	// MEDIA_URL이 외부 URL이면 파일 서빙은 외부에서 담당
	if d := current(); d.Media != nil && strings.HasPrefix(d.MediaURL, "/") {
		router.Static(d.MediaURL, d.Media.Root())
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
