package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/wishlist"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// wishlistRepository 心愿单仓储实现(SQLite)
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓储
func NewWishlistRepository(db *gorm.DB) wishlist.Repository {
	return &wishlistRepository{db: db}
}

// ListBySession 查询会话下的全部条目
func (r *wishlistRepository) ListBySession(ctx context.Context, sessionID string) ([]*wishlist.Item, error) {
	var models []WishlistItemModel
	err := getDB(ctx, r.db).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询心愿单失败")
	}

	items := make([]*wishlist.Item, len(models))
	for i := range models {
		items[i] = &wishlist.Item{
			ID:        models[i].ID,
			SessionID: models[i].SessionID,
			ProductID: models[i].ProductID,
			CreatedAt: models[i].CreatedAt,
		}
	}
	return items, nil
}

// Exists 判断商品是否已在心愿单中
func (r *wishlistRepository) Exists(ctx context.Context, sessionID string, productID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&WishlistItemModel{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询心愿单失败")
	}
	return count > 0, nil
}

// Create 创建条目
func (r *wishlistRepository) Create(ctx context.Context, item *wishlist.Item) error {
	model := &WishlistItemModel{
		SessionID: item.SessionID,
		ProductID: item.ProductID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			// 重复收藏按成功处理(幂等)
			return nil
		}
		return apperrors.Wrap(err, "创建心愿单条目失败")
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt

	return nil
}

// DeleteByProduct 按商品删除条目
func (r *wishlistRepository) DeleteByProduct(ctx context.Context, sessionID string, productID uint) error {
	result := getDB(ctx, r.db).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&WishlistItemModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除心愿单条目失败")
	}

	if result.RowsAffected == 0 {
		return wishlist.ErrItemNotFound
	}

	return nil
}
