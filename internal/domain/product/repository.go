package product

import (
	"context"
)

// Repository 商品仓储接口(依赖倒置)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. FindByIDForUpdate/UpdateStock必须配合TxManager在事务中调用,
//    保证"读库存-算新值-写回"不会与并发调整交错(防止丢失更新)
type Repository interface {
	// Create 创建商品
	Create(ctx context.Context, p *Product) error

	// FindByID 根据ID查找商品
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindByIDForUpdate 在事务中查找商品用于库存修改
	// SQLite单写者模型下事务本身即串行化写入,这里不加FOR UPDATE子句,
	// 但语义上要求调用方处于TxManager事务内
	FindByIDForUpdate(ctx context.Context, id uint) (*Product, error)

	// FindBySKU 根据SKU查找商品
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// Update 更新商品信息
	Update(ctx context.Context, p *Product) error

	// UpdateStock 更新库存数量与派生状态(同一条UPDATE)
	UpdateStock(ctx context.Context, id uint, quantity int, status StockStatus) error

	// Delete 删除商品(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询商品列表
	List(ctx context.Context, params ListParams) ([]*Product, int64, error)

	// CountByCategory 统计各分类下的商品数(分类树展示用)
	CountByCategory(ctx context.Context) (map[uint]int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page        int
	PageSize    int
	Keyword     string      // 搜索关键词(名称/SKU/描述)
	CategoryIDs []uint      // 分类过滤(已含子孙分类展开,空表示不过滤)
	StockStatus StockStatus // 库存状态过滤(空表示不过滤)
	OnlyActive  bool        // 只看上架商品(公开接口固定true)
	MinPrice    int64       // 价格下限(分,0表示不限)
	MaxPrice    int64       // 价格上限(分,0表示不限)
	SortBy      string      // price_asc | price_desc | name_asc | created_at_desc
}
