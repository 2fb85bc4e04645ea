package wishlist

import (
	"context"
)

// Repository 心愿单仓储接口
type Repository interface {
	// ListBySession 查询会话下的全部条目
	ListBySession(ctx context.Context, sessionID string) ([]*Item, error)

	// Exists 判断商品是否已在心愿单中
	Exists(ctx context.Context, sessionID string, productID uint) (bool, error)

	// Create 创建条目
	Create(ctx context.Context, item *Item) error

	// DeleteByProduct 按商品删除条目
	DeleteByProduct(ctx context.Context, sessionID string, productID uint) error
}
