package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类
	Create(ctx context.Context, c *Category) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindBySlug 根据slug查找分类
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// Update 更新分类
	Update(ctx context.Context, c *Category) error

	// Delete 删除分类(软删除)
	Delete(ctx context.Context, id uint) error

	// ListAll 加载全部分类(树构建与子孙展开用,分类量级很小)
	ListAll(ctx context.Context) ([]*Category, error)

	// HasChildren 判断分类是否有子分类
	HasChildren(ctx context.Context, id uint) (bool, error)

	// HasProducts 判断分类下是否有商品
	HasProducts(ctx context.Context, id uint) (bool, error)
}
