package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader 会话标识Header
// 购物车/心愿单按会话归属:前端首次访问拿到服务端分配的ID,
// 之后每次请求原样带回
const SessionHeader = "X-Session-ID"

// sessionKey Context中的会话ID键
const sessionKey = "session_id"

// Session 会话中间件
// 设计说明:
// 1. 请求带X-Session-ID则沿用(只接受合法UUID,拒绝客户端伪造任意串)
// 2. 没带或不合法则分配新的UUID
// 3. 响应总是回写X-Session-ID,前端负责保存
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)

		c.Next()
	}
}

// GetSessionID 从Context获取会话ID
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(sessionKey); exists {
		if s, ok := sessionID.(string); ok {
			return s
		}
	}
	return ""
}
