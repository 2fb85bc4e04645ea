package inventory

import (
	"context"
	"time"
)

// AdjustmentRepository 调整台账仓储接口
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(依赖倒置)
// 2. 只有Create和查询:台账只增不改,接口上就不提供Update/Delete
type AdjustmentRepository interface {
	// Create 写入一条台账记录
	Create(ctx context.Context, adj *Adjustment) error

	// List 分页查询台账(支持商品/类型/时间范围过滤)
	List(ctx context.Context, params ListParams) ([]*Adjustment, int64, error)

	// ListRecentByProduct 查询指定商品最近的调整记录
	ListRecentByProduct(ctx context.Context, productID uint, limit int) ([]*Adjustment, error)
}

// ListParams 台账查询参数
type ListParams struct {
	Page      int
	PageSize  int
	ProductID uint           // 0表示不过滤
	Type      AdjustmentType // 空表示不过滤
	From      *time.Time     // 起始时间(含)
	To        *time.Time     // 截止时间(含)
}

// AlertRepository 库存告警仓储接口
type AlertRepository interface {
	// Create 创建告警
	Create(ctx context.Context, alert *Alert) error

	// FindByID 根据ID查找告警
	FindByID(ctx context.Context, id uint) (*Alert, error)

	// HasOpen 判断指定商品是否已有未解决的同类型告警
	HasOpen(ctx context.Context, productID uint, alertType AlertType) (bool, error)

	// Resolve 解决告警
	// 返回false表示告警不存在或已解决(幂等,不报错也不改写resolvedAt)
	Resolve(ctx context.Context, id uint, at time.Time) (bool, error)

	// ListActive 查询所有未解决的告警
	ListActive(ctx context.Context) ([]*Alert, error)

	// ListOpenByProduct 查询指定商品的未解决告警
	ListOpenByProduct(ctx context.Context, productID uint) ([]*Alert, error)
}

// =========================================
// 库存报表读模型
// =========================================

// Stats 库存总览统计
type Stats struct {
	TotalProducts int64 `json:"total_products"` // 商品总数
	TotalUnits    int64 `json:"total_units"`    // 库存件数合计
	TotalValue    int64 `json:"total_value"`    // 库存货值合计(分)
	InStock       int64 `json:"in_stock"`       // 正常库存商品数
	LowStock      int64 `json:"low_stock"`      // 低库存商品数
	OutOfStock    int64 `json:"out_of_stock"`   // 缺货商品数
	OpenAlerts    int64 `json:"open_alerts"`    // 未解决告警数
}

// CategoryValue 按分类统计的库存货值
type CategoryValue struct {
	CategoryID   uint   `json:"category_id"` // 0表示未分类
	CategoryName string `json:"category_name"`
	Products     int64  `json:"products"`
	Units        int64  `json:"units"`
	Value        int64  `json:"value"` // 货值(分)
}

// ProductStock 商品库存行(低库存/补货清单用)
type ProductStock struct {
	ProductID         uint   `json:"product_id"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	StockQuantity     int    `json:"stock_quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	ReorderLevel      int    `json:"reorder_level"`
	StockStatus       string `json:"stock_status"`
}

// ExportRow 库存导出行
type ExportRow struct {
	ProductID         uint   `json:"product_id"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	CategoryName      string `json:"category_name"`
	Price             int64  `json:"price"`
	StockQuantity     int    `json:"stock_quantity"`
	StockStatus       string `json:"stock_status"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	ReorderLevel      int    `json:"reorder_level"`
	StockValue        int64  `json:"stock_value"` // price * quantity
}

// ReportRepository 库存报表仓储接口(只读聚合查询)
type ReportRepository interface {
	// Stats 库存总览
	Stats(ctx context.Context) (*Stats, error)

	// ValueByCategory 按分类汇总货值
	ValueByCategory(ctx context.Context) ([]*CategoryValue, error)

	// LowStockProducts 低库存商品清单(quantity <= low_stock_threshold且未缺货)
	LowStockProducts(ctx context.Context) ([]*ProductStock, error)

	// ReorderProducts 到达补货点的商品清单(quantity <= reorder_level)
	ReorderProducts(ctx context.Context) ([]*ProductStock, error)

	// ExportRows 导出用全量库存快照
	ExportRows(ctx context.Context) ([]*ExportRow, error)
}
