package review

import (
	"context"
)

// Repository 评论仓储接口
type Repository interface {
	// Create 创建评论
	Create(ctx context.Context, r *Review) error

	// ListByProduct 分页查询商品评论(按时间倒序)
	ListByProduct(ctx context.Context, productID uint, page, pageSize int) ([]*Review, int64, error)

	// SummaryByProduct 统计商品评论数与平均分
	SummaryByProduct(ctx context.Context, productID uint) (*Summary, error)
}
