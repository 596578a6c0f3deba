package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InviteCodeMiddleware X-Invite-Code 헤더 확인. 코드가 비어 있으면 가입 자체를 막음
func InviteCodeMiddleware(inviteCode string) gin.HandlerFunc {
	if inviteCode == "" {
		zap.L().Warn("InviteCodeMiddleware(): SIGNUP_INVITE_CODE is empty, admin signup disabled")
	}
	return func(c *gin.Context) {
		if inviteCode == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Signup is disabled"})
			return
		}
		if c.GetHeader("X-Invite-Code") != inviteCode {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid invite code"})
			return
		}
		c.Next()
	}
}
