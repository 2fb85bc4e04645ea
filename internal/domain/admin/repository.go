package admin

import (
	"context"
)

// Repository 管理员仓储接口
type Repository interface {
	// Create 创建管理员
	Create(ctx context.Context, a *Admin) error

	// FindByID 按ID查询
	FindByID(ctx context.Context, id uint) (*Admin, error)

	// FindByEmail 按邮箱查询
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}
