package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/storefront/pkg/jwt"
	"github.com/xiebiao/storefront/pkg/response"
)

// AuthMiddleware JWT认证中间件(管理端)
// 设计说明：
// 1. 从Header提取Token
// 2. 验证Token有效性
// 3. 将管理员信息注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// RequireAuth 要求登录
// 使用方式：
//
//	adminGroup := r.Group("/api/v1/admin")
//	adminGroup.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从Header提取Token
		// 格式：Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, 40100, "请先登录")
			c.Abort()
			return
		}

		// 2. 解析Token格式
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, 40101, "Token格式错误")
			c.Abort()
			return
		}

		// 3. 验证Token并解析Claims
		claims, err := m.jwtManager.ParseToken(parts[1])
		if err != nil {
			response.Error(c, err) // 自动处理ErrTokenExpired、ErrInvalidToken
			c.Abort()
			return
		}

		// 4. 将管理员信息注入到Context(后续Handler可以使用)
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)
		c.Set("admin_nickname", claims.Nickname)

		c.Next()
	}
}

// =========================================
// Context辅助函数(供Handler使用)
// =========================================

// GetAdminID 从Context获取当前登录管理员ID
func GetAdminID(c *gin.Context) uint {
	if adminID, exists := c.Get("admin_id"); exists {
		if id, ok := adminID.(uint); ok {
			return id
		}
	}
	return 0
}

// GetAdminEmail 从Context获取当前登录管理员邮箱
func GetAdminEmail(c *gin.Context) string {
	if email, exists := c.Get("admin_email"); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}
