package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/inventory"
	"github.com/xiebiao/storefront/internal/domain/product"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// reportRepository 库存报表仓储实现(SQLite)
// 设计说明:
// 1. 只读聚合查询,直接在SQL里汇总,不把全表商品捞进内存
// 2. 报表统计只覆盖未软删除的商品(GORM默认过滤deleted_at)
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓储
func NewReportRepository(db *gorm.DB) inventory.ReportRepository {
	return &reportRepository{db: db}
}

// Stats 库存总览
func (r *reportRepository) Stats(ctx context.Context) (*inventory.Stats, error) {
	db := getDB(ctx, r.db)

	var stats inventory.Stats
	err := db.Model(&ProductModel{}).
		Select(`COUNT(*) AS total_products,
			COALESCE(SUM(stock_quantity), 0) AS total_units,
			COALESCE(SUM(price * stock_quantity), 0) AS total_value,
			COALESCE(SUM(CASE WHEN stock_status = ? THEN 1 ELSE 0 END), 0) AS in_stock,
			COALESCE(SUM(CASE WHEN stock_status = ? THEN 1 ELSE 0 END), 0) AS low_stock,
			COALESCE(SUM(CASE WHEN stock_status = ? THEN 1 ELSE 0 END), 0) AS out_of_stock`,
			string(product.StockStatusInStock),
			string(product.StockStatusLowStock),
			string(product.StockStatusOutOfStock)).
		Scan(&stats).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询库存统计失败")
	}

	// 未解决告警数单独统计
	err = db.Model(&LowStockAlertModel{}).
		Where("is_resolved = ?", false).
		Count(&stats.OpenAlerts).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询告警统计失败")
	}

	return &stats, nil
}

// ValueByCategory 按分类汇总货值
// LEFT JOIN分类表,未分类商品归入category_id=0的"未分类"行
func (r *reportRepository) ValueByCategory(ctx context.Context) ([]*inventory.CategoryValue, error) {
	var rows []*inventory.CategoryValue

	err := getDB(ctx, r.db).Model(&ProductModel{}).
		Select(`COALESCE(products.category_id, 0) AS category_id,
			COALESCE(categories.name, '未分类') AS category_name,
			COUNT(*) AS products,
			COALESCE(SUM(products.stock_quantity), 0) AS units,
			COALESCE(SUM(products.price * products.stock_quantity), 0) AS value`).
		Joins("LEFT JOIN categories ON categories.id = products.category_id AND categories.deleted_at IS NULL").
		Group("COALESCE(products.category_id, 0), COALESCE(categories.name, '未分类')").
		Order("value DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类货值失败")
	}

	return rows, nil
}

// LowStockProducts 低库存商品清单
// 口径:库存大于0且不超过低库存阈值(缺货商品单独在ReorderProducts体现)
func (r *reportRepository) LowStockProducts(ctx context.Context) ([]*inventory.ProductStock, error) {
	return r.listProductStock(ctx, "stock_quantity > 0 AND stock_quantity <= low_stock_threshold")
}

// ReorderProducts 到达补货点的商品清单
func (r *reportRepository) ReorderProducts(ctx context.Context) ([]*inventory.ProductStock, error) {
	return r.listProductStock(ctx, "stock_quantity <= reorder_level")
}

// listProductStock 低库存/补货清单的公共查询
func (r *reportRepository) listProductStock(ctx context.Context, cond string) ([]*inventory.ProductStock, error) {
	var rows []*inventory.ProductStock

	err := getDB(ctx, r.db).Model(&ProductModel{}).
		Select(`id AS product_id, sku, name, stock_quantity,
			low_stock_threshold, reorder_level, stock_status`).
		Where(cond).
		Order("stock_quantity ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询库存清单失败")
	}

	return rows, nil
}

// ExportRows 导出用全量库存快照
func (r *reportRepository) ExportRows(ctx context.Context) ([]*inventory.ExportRow, error) {
	var rows []*inventory.ExportRow

	err := getDB(ctx, r.db).Model(&ProductModel{}).
		Select(`products.id AS product_id, products.sku, products.name,
			COALESCE(categories.name, '') AS category_name,
			products.price, products.stock_quantity, products.stock_status,
			products.low_stock_threshold, products.reorder_level,
			products.price * products.stock_quantity AS stock_value`).
		Joins("LEFT JOIN categories ON categories.id = products.category_id AND categories.deleted_at IS NULL").
		Order("products.sku ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询导出快照失败")
	}

	return rows, nil
}
