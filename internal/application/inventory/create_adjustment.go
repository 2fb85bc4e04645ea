package inventory

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xiebiao/storefront/internal/domain/inventory"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// TxManager 事务边界
// 由sqlite.TxManager实现;用例只依赖这个最小接口,测试时可注入假实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CatalogCache 目录缓存失效接口
// 调整改变库存数量与状态,公开目录的列表/详情缓存必须跟着失效
type CatalogCache interface {
	InvalidateProduct(ctx context.Context, productID uint)
	InvalidateProductLists(ctx context.Context)
}

// CreateAdjustmentUseCase 库存调整用例
// 设计说明:这是整个项目最核心的用例
// 一次调整在同一事务中完成五件事:
//  1. 读取商品当前库存
//  2. 按调整类型计算新库存(出库不足时拒绝)
//  3. 写回新库存与派生状态
//  4. 写入台账记录(审计凭证,只增不改)
//  5. 检查并产生库存告警
//
// 任何一步失败整体回滚:台账里不会出现没有生效的调整,
// 库存也不会在没有台账的情况下变化
type CreateAdjustmentUseCase struct {
	productRepo product.Repository
	adjRepo     inventory.AdjustmentRepository
	alertRepo   inventory.AlertRepository
	txManager   TxManager
	cache       CatalogCache
}

// NewCreateAdjustmentUseCase 创建库存调整用例
func NewCreateAdjustmentUseCase(
	productRepo product.Repository,
	adjRepo inventory.AdjustmentRepository,
	alertRepo inventory.AlertRepository,
	txManager TxManager,
	cache CatalogCache,
) *CreateAdjustmentUseCase {
	return &CreateAdjustmentUseCase{
		productRepo: productRepo,
		adjRepo:     adjRepo,
		alertRepo:   alertRepo,
		txManager:   txManager,
		cache:       cache,
	}
}

// CreateAdjustmentRequest 库存调整请求DTO
type CreateAdjustmentRequest struct {
	ProductID uint
	Type      string // 七种调整类型之一
	Quantity  int
	Reason    string // 必填
	Notes     string
	CreatedBy string // 操作人(从JWT中提取)
}

// CreateAdjustmentResponse 库存调整响应DTO
// 返回调整前后的库存快照,管理端无需再查一次商品
type CreateAdjustmentResponse struct {
	AdjustmentID     uint   `json:"adjustment_id"`
	ProductID        uint   `json:"product_id"`
	Type             string `json:"type"`
	Quantity         int    `json:"quantity"`
	PreviousQuantity int    `json:"previous_quantity"`
	NewQuantity      int    `json:"new_quantity"`
	StockStatus      string `json:"stock_status"`
	CreatedAt        string `json:"created_at"`
}

// Execute 执行库存调整
func (uc *CreateAdjustmentUseCase) Execute(ctx context.Context, req CreateAdjustmentRequest) (*CreateAdjustmentResponse, error) {
	timer := prometheus.NewTimer(metrics.AdjustmentDuration)
	defer timer.ObserveDuration()

	// 1. 解析调整类型(非法类型直接拒绝,不开事务)
	adjType, err := inventory.ParseAdjustmentType(req.Type)
	if err != nil {
		metrics.InventoryAdjustmentsTotal.WithLabelValues(req.Type, "failure").Inc()
		return nil, err
	}

	var resp *CreateAdjustmentResponse
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 2. 读取商品当前库存
		// SQLite单写者模型下事务即写锁,读出的库存在本事务内不会被并发修改
		p, err := uc.productRepo.FindByIDForUpdate(txCtx, req.ProductID)
		if err != nil {
			return err
		}
		previous := p.StockQuantity

		// 3. 按类型计算新库存(出库不足返回ErrInsufficientStock)
		next, err := adjType.Apply(previous, req.Quantity)
		if err != nil {
			return err
		}

		// 4. 写回新库存与派生状态(同一条UPDATE)
		status := product.StatusFor(next, p.LowStockThreshold)
		if err := uc.productRepo.UpdateStock(txCtx, p.ID, next, status); err != nil {
			return err
		}

		// 5. 写入台账
		adj, err := inventory.NewAdjustment(p.ID, adjType, req.Quantity, req.Reason, req.Notes, req.CreatedBy)
		if err != nil {
			return err
		}
		if err := uc.adjRepo.Create(txCtx, adj); err != nil {
			return err
		}

		// 6. 检查并产生库存告警(同一事务,保证告警与库存一致)
		if err := uc.checkAlerts(txCtx, p, next); err != nil {
			return err
		}

		resp = &CreateAdjustmentResponse{
			AdjustmentID:     adj.ID,
			ProductID:        p.ID,
			Type:             string(adjType),
			Quantity:         req.Quantity,
			PreviousQuantity: previous,
			NewQuantity:      next,
			StockStatus:      string(status),
			CreatedAt:        adj.CreatedAt.Format(time.RFC3339),
		}
		return nil
	})

	if err != nil {
		metrics.InventoryAdjustmentsTotal.WithLabelValues(string(adjType), "failure").Inc()
		return nil, err
	}

	// 7. 库存变化后失效目录缓存(事务提交之后,失败只影响缓存新鲜度)
	uc.cache.InvalidateProduct(ctx, req.ProductID)
	uc.cache.InvalidateProductLists(ctx)

	metrics.InventoryAdjustmentsTotal.WithLabelValues(string(adjType), "success").Inc()
	return resp, nil
}

// checkAlerts 检查库存水位并产生告警
// 业务规则:
// 1. 新库存 <= 低库存阈值 → low_stock告警
// 2. 新库存 <= 补货点 → reorder告警
// 3. 同一商品同一类型最多一条未解决告警(已有则不重复产生)
// 4. 告警是粘性的:库存回升不关闭已有告警,只能人工Resolve
func (uc *CreateAdjustmentUseCase) checkAlerts(ctx context.Context, p *product.Product, quantity int) error {
	type rule struct {
		alertType inventory.AlertType
		threshold int
		triggered bool
	}

	rules := []rule{
		{inventory.AlertTypeLowStock, p.LowStockThreshold, quantity <= p.LowStockThreshold},
		{inventory.AlertTypeReorder, p.ReorderLevel, quantity <= p.ReorderLevel},
	}

	for _, r := range rules {
		if !r.triggered {
			continue
		}

		// 查重:已有未解决的同类型告警则跳过
		open, err := uc.alertRepo.HasOpen(ctx, p.ID, r.alertType)
		if err != nil {
			return err
		}
		if open {
			continue
		}

		alert := inventory.NewAlert(p.ID, r.alertType, quantity, r.threshold)
		if err := uc.alertRepo.Create(ctx, alert); err != nil {
			return err
		}
		metrics.LowStockAlertsTotal.WithLabelValues(string(r.alertType)).Inc()
	}

	return nil
}
