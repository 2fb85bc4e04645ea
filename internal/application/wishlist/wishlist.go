package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/domain/wishlist"
)

// UseCase 心愿单用例
// 心愿单与购物车一样按会话归属;收藏是幂等操作,重复收藏不报错
type UseCase struct {
	wishlistRepo wishlist.Repository
	productRepo  product.Repository
}

// NewUseCase 创建心愿单用例
func NewUseCase(wishlistRepo wishlist.Repository, productRepo product.Repository) *UseCase {
	return &UseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ItemView 心愿单条目视图(带商品快照)
type ItemView struct {
	ProductID   uint   `json:"product_id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	StockStatus string `json:"stock_status"`
	Available   bool   `json:"available"`
	AddedAt     string `json:"added_at"`
}

// List 查询心愿单
func (uc *UseCase) List(ctx context.Context, sessionID string) ([]ItemView, error) {
	items, err := uc.wishlistRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		p, err := uc.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		views = append(views, ItemView{
			ProductID:   p.ID,
			SKU:         p.SKU,
			Name:        p.Name,
			Price:       p.Price,
			StockStatus: string(p.StockStatus),
			Available:   p.Available(),
			AddedAt:     item.CreatedAt.Format(time.RFC3339),
		})
	}

	return views, nil
}

// Add 收藏商品(幂等)
// 下架商品也可以收藏:心愿单本来就是"等它回来"的地方
func (uc *UseCase) Add(ctx context.Context, sessionID string, productID uint) error {
	if _, err := uc.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	exists, err := uc.wishlistRepo.Exists(ctx, sessionID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return uc.wishlistRepo.Create(ctx, wishlist.NewItem(sessionID, productID))
}

// Remove 取消收藏
func (uc *UseCase) Remove(ctx context.Context, sessionID string, productID uint) error {
	return uc.wishlistRepo.DeleteByProduct(ctx, sessionID, productID)
}
