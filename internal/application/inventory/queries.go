package inventory

import (
	"context"
	"time"

	"github.com/xiebiao/storefront/internal/domain/inventory"
	"github.com/xiebiao/storefront/internal/domain/product"
)

// 查询类用例集中在这个文件:
// 它们都是无事务的只读路径,不值得每个单独一个文件

// QueriesUseCase 库存查询用例(台账/告警/报表)
type QueriesUseCase struct {
	productRepo product.Repository
	adjRepo     inventory.AdjustmentRepository
	alertRepo   inventory.AlertRepository
	reportRepo  inventory.ReportRepository
}

// NewQueriesUseCase 创建库存查询用例
func NewQueriesUseCase(
	productRepo product.Repository,
	adjRepo inventory.AdjustmentRepository,
	alertRepo inventory.AlertRepository,
	reportRepo inventory.ReportRepository,
) *QueriesUseCase {
	return &QueriesUseCase{
		productRepo: productRepo,
		adjRepo:     adjRepo,
		alertRepo:   alertRepo,
		reportRepo:  reportRepo,
	}
}

// AdjustmentView 台账记录视图
type AdjustmentView struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListAdjustmentsRequest 台账查询请求DTO
type ListAdjustmentsRequest struct {
	Page      int
	PageSize  int
	ProductID uint
	Type      string
	From      *time.Time
	To        *time.Time
}

// ListAdjustments 分页查询调整台账
func (uc *QueriesUseCase) ListAdjustments(ctx context.Context, req ListAdjustmentsRequest) ([]*AdjustmentView, int64, error) {
	params := inventory.ListParams{
		Page:      req.Page,
		PageSize:  req.PageSize,
		ProductID: req.ProductID,
		From:      req.From,
		To:        req.To,
	}

	// 类型过滤参数非法时直接报错,不要静默返回全量
	if req.Type != "" {
		t, err := inventory.ParseAdjustmentType(req.Type)
		if err != nil {
			return nil, 0, err
		}
		params.Type = t
	}

	adjustments, total, err := uc.adjRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	return toAdjustmentViews(adjustments), total, nil
}

// ProductInventoryResponse 单商品库存档案
// 商品当前快照 + 最近调整记录 + 未解决告警,管理端详情页一次拿全
type ProductInventoryResponse struct {
	ProductID         uint              `json:"product_id"`
	SKU               string            `json:"sku"`
	Name              string            `json:"name"`
	StockQuantity     int               `json:"stock_quantity"`
	StockStatus       string            `json:"stock_status"`
	LowStockThreshold int               `json:"low_stock_threshold"`
	ReorderLevel      int               `json:"reorder_level"`
	RecentAdjustments []*AdjustmentView `json:"recent_adjustments"`
	OpenAlerts        []*AlertView      `json:"open_alerts"`
}

// GetProductInventory 查询单商品库存档案
func (uc *QueriesUseCase) GetProductInventory(ctx context.Context, productID uint) (*ProductInventoryResponse, error) {
	p, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	const recentLimit = 20
	adjustments, err := uc.adjRepo.ListRecentByProduct(ctx, productID, recentLimit)
	if err != nil {
		return nil, err
	}

	alerts, err := uc.alertRepo.ListOpenByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ProductInventoryResponse{
		ProductID:         p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		StockQuantity:     p.StockQuantity,
		StockStatus:       string(p.StockStatus),
		LowStockThreshold: p.LowStockThreshold,
		ReorderLevel:      p.ReorderLevel,
		RecentAdjustments: toAdjustmentViews(adjustments),
		OpenAlerts:        toAlertViews(alerts),
	}, nil
}

// AlertView 告警视图
type AlertView struct {
	ID              uint   `json:"id"`
	ProductID       uint   `json:"product_id"`
	AlertType       string `json:"alert_type"`
	CurrentQuantity int    `json:"current_quantity"`
	Threshold       int    `json:"threshold"`
	IsResolved      bool   `json:"is_resolved"`
	ResolvedAt      string `json:"resolved_at,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// ListActiveAlerts 查询所有未解决的告警
func (uc *QueriesUseCase) ListActiveAlerts(ctx context.Context) ([]*AlertView, error) {
	alerts, err := uc.alertRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toAlertViews(alerts), nil
}

// Stats 库存总览统计
func (uc *QueriesUseCase) Stats(ctx context.Context) (*inventory.Stats, error) {
	return uc.reportRepo.Stats(ctx)
}

// ValueByCategory 按分类汇总货值
func (uc *QueriesUseCase) ValueByCategory(ctx context.Context) ([]*inventory.CategoryValue, error) {
	return uc.reportRepo.ValueByCategory(ctx)
}

// LowStockProducts 低库存商品清单
func (uc *QueriesUseCase) LowStockProducts(ctx context.Context) ([]*inventory.ProductStock, error) {
	return uc.reportRepo.LowStockProducts(ctx)
}

// ReorderProducts 到达补货点的商品清单
func (uc *QueriesUseCase) ReorderProducts(ctx context.Context) ([]*inventory.ProductStock, error) {
	return uc.reportRepo.ReorderProducts(ctx)
}

// =========================================
// 辅助函数:视图转换
// =========================================

func toAdjustmentViews(adjustments []*inventory.Adjustment) []*AdjustmentView {
	views := make([]*AdjustmentView, len(adjustments))
	for i, adj := range adjustments {
		views[i] = &AdjustmentView{
			ID:        adj.ID,
			ProductID: adj.ProductID,
			Type:      string(adj.Type),
			Quantity:  adj.Quantity,
			Reason:    adj.Reason,
			Notes:     adj.Notes,
			CreatedBy: adj.CreatedBy,
			CreatedAt: adj.CreatedAt.Format(time.RFC3339),
		}
	}
	return views
}

func toAlertViews(alerts []*inventory.Alert) []*AlertView {
	views := make([]*AlertView, len(alerts))
	for i, a := range alerts {
		view := &AlertView{
			ID:              a.ID,
			ProductID:       a.ProductID,
			AlertType:       string(a.AlertType),
			CurrentQuantity: a.CurrentQuantity,
			Threshold:       a.Threshold,
			IsResolved:      a.IsResolved,
			CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		}
		if a.ResolvedAt != nil {
			view.ResolvedAt = a.ResolvedAt.Format(time.RFC3339)
		}
		views[i] = view
	}
	return views
}
