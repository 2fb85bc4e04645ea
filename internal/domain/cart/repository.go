package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// ListBySession 查询会话下的全部条目
	ListBySession(ctx context.Context, sessionID string) ([]*Item, error)

	// FindItem 查询会话下指定商品的条目(不存在返回ErrItemNotFound)
	FindItem(ctx context.Context, sessionID string, productID uint) (*Item, error)

	// FindByID 根据条目ID查询(带会话校验,防止跨会话操作)
	FindByID(ctx context.Context, sessionID string, id uint) (*Item, error)

	// Create 创建条目
	Create(ctx context.Context, item *Item) error

	// Update 更新条目数量
	Update(ctx context.Context, item *Item) error

	// Delete 删除条目
	Delete(ctx context.Context, sessionID string, id uint) error

	// DeleteBySession 清空会话购物车
	DeleteBySession(ctx context.Context, sessionID string) error
}
