package admin

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 管理员领域错误定义
var (
	// ErrAdminNotFound 管理员不存在
	ErrAdminNotFound = apperrors.New(apperrors.ErrCodeAdminNotFound, "管理员不存在")

	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = apperrors.New(apperrors.ErrCodeInvalidPassword, "邮箱或密码错误")

	// ErrAdminDisabled 账号已禁用
	ErrAdminDisabled = apperrors.New(apperrors.ErrCodeForbidden, "账号已被禁用")
)
