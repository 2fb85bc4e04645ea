package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/cart"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// cartRepository 购物车仓储实现(SQLite)
// 所有查询都带session_id条件,从仓储层杜绝跨会话访问
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// ListBySession 查询会话下的全部条目
func (r *cartRepository) ListBySession(ctx context.Context, sessionID string) ([]*cart.Item, error) {
	var models []CartItemModel
	err := getDB(ctx, r.db).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	items := make([]*cart.Item, len(models))
	for i := range models {
		items[i] = toCartItemEntity(&models[i])
	}
	return items, nil
}

// FindItem 查询会话下指定商品的条目
func (r *cartRepository) FindItem(ctx context.Context, sessionID string, productID uint) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return toCartItemEntity(&model), nil
}

// FindByID 根据条目ID查询(带会话校验)
func (r *cartRepository) FindByID(ctx context.Context, sessionID string, id uint) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("id = ? AND session_id = ?", id, sessionID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return toCartItemEntity(&model), nil
}

// Create 创建条目
func (r *cartRepository) Create(ctx context.Context, item *cart.Item) error {
	model := &CartItemModel{
		SessionID: item.SessionID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			// 同一商品已在购物车中,调用方应走数量合并路径
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "商品已在购物车中")
		}
		return apperrors.Wrap(err, "创建购物车条目失败")
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt

	return nil
}

// Update 更新条目数量
func (r *cartRepository) Update(ctx context.Context, item *cart.Item) error {
	result := getDB(ctx, r.db).Model(&CartItemModel{}).
		Where("id = ? AND session_id = ?", item.ID, item.SessionID).
		Update("quantity", item.Quantity)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}

	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}

	return nil
}

// Delete 删除条目
func (r *cartRepository) Delete(ctx context.Context, sessionID string, id uint) error {
	result := getDB(ctx, r.db).
		Where("id = ? AND session_id = ?", id, sessionID).
		Delete(&CartItemModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}

	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}

	return nil
}

// DeleteBySession 清空会话购物车
func (r *cartRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	err := getDB(ctx, r.db).
		Where("session_id = ?", sessionID).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// toCartItemEntity GORM模型 → 领域实体
func toCartItemEntity(model *CartItemModel) *cart.Item {
	return &cart.Item{
		ID:        model.ID,
		SessionID: model.SessionID,
		ProductID: model.ProductID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
