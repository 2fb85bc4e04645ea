package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/inventory"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// adjustmentRepository 库存调整台账仓储实现(SQLite)
// 设计说明:台账只增不改,实现上没有UPDATE/DELETE路径
type adjustmentRepository struct {
	db *gorm.DB
}

// NewAdjustmentRepository 创建台账仓储
func NewAdjustmentRepository(db *gorm.DB) inventory.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// Create 写入一条台账记录
func (r *adjustmentRepository) Create(ctx context.Context, adj *inventory.Adjustment) error {
	model := &InventoryAdjustmentModel{
		ProductID: adj.ProductID,
		Type:      string(adj.Type),
		Quantity:  adj.Quantity,
		Reason:    adj.Reason,
		Notes:     adj.Notes,
		CreatedBy: adj.CreatedBy,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "写入库存台账失败")
	}

	adj.ID = model.ID
	adj.CreatedAt = model.CreatedAt

	return nil
}

// List 分页查询台账
func (r *adjustmentRepository) List(ctx context.Context, params inventory.ListParams) ([]*inventory.Adjustment, int64, error) {
	var models []InventoryAdjustmentModel
	var total int64

	query := getDB(ctx, r.db).Model(&InventoryAdjustmentModel{})

	if params.ProductID > 0 {
		query = query.Where("product_id = ?", params.ProductID)
	}
	if params.Type != "" {
		query = query.Where("type = ?", string(params.Type))
	}
	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询台账总数失败")
	}

	offset := (params.Page - 1) * params.PageSize
	err := query.Order("created_at DESC").
		Limit(params.PageSize).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询台账列表失败")
	}

	adjustments := make([]*inventory.Adjustment, len(models))
	for i := range models {
		adjustments[i] = toAdjustmentEntity(&models[i])
	}

	return adjustments, total, nil
}

// ListRecentByProduct 查询指定商品最近的调整记录
func (r *adjustmentRepository) ListRecentByProduct(ctx context.Context, productID uint, limit int) ([]*inventory.Adjustment, error) {
	var models []InventoryAdjustmentModel
	err := getDB(ctx, r.db).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询商品台账失败")
	}

	adjustments := make([]*inventory.Adjustment, len(models))
	for i := range models {
		adjustments[i] = toAdjustmentEntity(&models[i])
	}
	return adjustments, nil
}

// toAdjustmentEntity GORM模型 → 领域实体
func toAdjustmentEntity(model *InventoryAdjustmentModel) *inventory.Adjustment {
	return &inventory.Adjustment{
		ID:        model.ID,
		ProductID: model.ProductID,
		Type:      inventory.AdjustmentType(model.Type),
		Quantity:  model.Quantity,
		Reason:    model.Reason,
		Notes:     model.Notes,
		CreatedBy: model.CreatedBy,
		CreatedAt: model.CreatedAt,
	}
}

// =========================================
// 告警仓储
// =========================================

// alertRepository 库存告警仓储实现(SQLite)
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository 创建告警仓储
func NewAlertRepository(db *gorm.DB) inventory.AlertRepository {
	return &alertRepository{db: db}
}

// Create 创建告警
func (r *alertRepository) Create(ctx context.Context, alert *inventory.Alert) error {
	model := &LowStockAlertModel{
		ProductID:       alert.ProductID,
		AlertType:       string(alert.AlertType),
		CurrentQuantity: alert.CurrentQuantity,
		Threshold:       alert.Threshold,
		IsResolved:      alert.IsResolved,
		ResolvedAt:      alert.ResolvedAt,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建库存告警失败")
	}

	alert.ID = model.ID
	alert.CreatedAt = model.CreatedAt

	return nil
}

// FindByID 根据ID查找告警
func (r *alertRepository) FindByID(ctx context.Context, id uint) (*inventory.Alert, error) {
	var model LowStockAlertModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrAlertNotFound
		}
		return nil, apperrors.Wrap(err, "查询告警失败")
	}

	return toAlertEntity(&model), nil
}

// HasOpen 判断指定商品是否已有未解决的同类型告警
// "同类型未解决告警至多一条"的去重检查,必须与告警创建在同一事务中
func (r *alertRepository) HasOpen(ctx context.Context, productID uint, alertType inventory.AlertType) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&LowStockAlertModel{}).
		Where("product_id = ? AND alert_type = ? AND is_resolved = ?", productID, string(alertType), false).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询未解决告警失败")
	}
	return count > 0, nil
}

// Resolve 解决告警
// 幂等实现:UPDATE带is_resolved=false条件,重复解决时RowsAffected为0,
// 返回false且不改写原有的resolved_at
func (r *alertRepository) Resolve(ctx context.Context, id uint, at time.Time) (bool, error) {
	result := getDB(ctx, r.db).Model(&LowStockAlertModel{}).
		Where("id = ? AND is_resolved = ?", id, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_at": at,
		})

	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "解决告警失败")
	}

	return result.RowsAffected > 0, nil
}

// ListActive 查询所有未解决的告警
func (r *alertRepository) ListActive(ctx context.Context) ([]*inventory.Alert, error) {
	var models []LowStockAlertModel
	err := getDB(ctx, r.db).
		Where("is_resolved = ?", false).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询告警列表失败")
	}

	alerts := make([]*inventory.Alert, len(models))
	for i := range models {
		alerts[i] = toAlertEntity(&models[i])
	}
	return alerts, nil
}

// ListOpenByProduct 查询指定商品的未解决告警
func (r *alertRepository) ListOpenByProduct(ctx context.Context, productID uint) ([]*inventory.Alert, error) {
	var models []LowStockAlertModel
	err := getDB(ctx, r.db).
		Where("product_id = ? AND is_resolved = ?", productID, false).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询商品告警失败")
	}

	alerts := make([]*inventory.Alert, len(models))
	for i := range models {
		alerts[i] = toAlertEntity(&models[i])
	}
	return alerts, nil
}

// toAlertEntity GORM模型 → 领域实体
func toAlertEntity(model *LowStockAlertModel) *inventory.Alert {
	return &inventory.Alert{
		ID:              model.ID,
		ProductID:       model.ProductID,
		AlertType:       inventory.AlertType(model.AlertType),
		CurrentQuantity: model.CurrentQuantity,
		Threshold:       model.Threshold,
		IsResolved:      model.IsResolved,
		ResolvedAt:      model.ResolvedAt,
		CreatedAt:       model.CreatedAt,
	}
}
