package handler

import (
	"github.com/gin-gonic/gin"

	appadmin "github.com/xiebiao/storefront/internal/application/admin"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// AdminHandler 管理员认证HTTP处理器
type AdminHandler struct {
	loginUC   *appadmin.LoginUseCase
	refreshUC *appadmin.RefreshUseCase
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(loginUC *appadmin.LoginUseCase, refreshUC *appadmin.RefreshUseCase) *AdminHandler {
	return &AdminHandler{
		loginUC:   loginUC,
		refreshUC: refreshUC,
	}
}

// Login 管理员登录
// @Summary      管理员登录
// @Description  邮箱密码登录,返回Access/Refresh Token对
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=appadmin.LoginResponse}
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), appadmin.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RefreshToken 刷新Token
// @Summary      刷新Token
// @Description  用Refresh Token换取新的Access Token
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshTokenRequest true "Refresh Token"
// @Success      200 {object} response.Response{data=appadmin.RefreshResponse}
// @Failure      401 {object} response.Response "Token无效或已过期"
// @Router       /api/v1/admin/refresh [post]
func (h *AdminHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
