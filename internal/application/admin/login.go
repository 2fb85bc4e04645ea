package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/admin"
	"github.com/xiebiao/storefront/pkg/jwt"
)

// LoginUseCase 管理员登录用例
// 设计说明：
// 1. 验证邮箱密码(bcrypt比对)
// 2. 生成JWT Token对
// 3. 邮箱不存在和密码错误返回同一个错误,不给撞库者区分信息
type LoginUseCase struct {
	adminRepo  admin.Repository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(adminRepo admin.Repository, jwtManager *jwt.Manager, logger *zap.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Email    string
	Password string
}

// AdminInfo 管理员信息
type AdminInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	Admin        AdminInfo `json:"admin"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"` // Access Token过期时间(秒)
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 查询管理员
	a, err := uc.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		// 邮箱不存在统一返回"邮箱或密码错误"
		uc.logger.Info("登录失败", zap.String("email", req.Email), zap.String("reason", "not_found"))
		return nil, admin.ErrInvalidCredentials
	}

	// 2. 校验密码与账号状态
	if !a.CheckPassword(req.Password) {
		uc.logger.Info("登录失败", zap.String("email", req.Email), zap.String("reason", "bad_password"))
		return nil, admin.ErrInvalidCredentials
	}
	if !a.IsActive {
		return nil, admin.ErrAdminDisabled
	}

	// 3. 生成JWT Token对
	tokenPair, err := uc.jwtManager.GenerateToken(a.ID, a.Email, a.Nickname)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("管理员登录成功", zap.Uint("admin_id", a.ID), zap.String("email", a.Email))

	return &LoginResponse{
		Admin: AdminInfo{
			ID:       a.ID,
			Email:    a.Email,
			Nickname: a.Nickname,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// RefreshUseCase Token刷新用例
type RefreshUseCase struct {
	jwtManager *jwt.Manager
}

// NewRefreshUseCase 创建刷新用例
func NewRefreshUseCase(jwtManager *jwt.Manager) *RefreshUseCase {
	return &RefreshUseCase{jwtManager: jwtManager}
}

// RefreshResponse 刷新响应DTO
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Execute 用Refresh Token换新的Access Token
func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	accessToken, err := uc.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}

	return &RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   uc.jwtManager.AccessTokenExpireSeconds(),
	}, nil
}
