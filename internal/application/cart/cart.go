package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/product"
)

// UseCase 购物车用例
// 设计说明:
// 1. 购物车按会话归属,session_id由中间件通过X-Session-ID下发
// 2. 加购前校验商品可购买(上架且有库存);购物车里不存价格,
//    结算时以商品当前价格为准(防止改价)
// 3. 同一商品重复加购走数量合并,上限99
type UseCase struct {
	cartRepo    cart.Repository
	productRepo product.Repository
}

// NewUseCase 创建购物车用例
func NewUseCase(cartRepo cart.Repository, productRepo product.Repository) *UseCase {
	return &UseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ItemView 购物车条目视图(带商品快照与小计)
type ItemView struct {
	ID            uint   `json:"id"`
	ProductID     uint   `json:"product_id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	Quantity      int    `json:"quantity"`
	Subtotal      int64  `json:"subtotal"`
	StockStatus   string `json:"stock_status"`
	Available     bool   `json:"available"` // 商品已下架或售罄时为false
}

// CartResponse 购物车响应DTO
type CartResponse struct {
	Items      []ItemView `json:"items"`
	TotalItems int        `json:"total_items"` // 件数合计
	TotalPrice int64      `json:"total_price"` // 金额合计(分),只计可购买条目
}

// Get 查询购物车
// 商品在加购后被删除的条目直接跳过;下架/售罄的条目保留但标记不可购买
func (uc *UseCase) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	items, err := uc.cartRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &CartResponse{Items: make([]ItemView, 0, len(items))}
	for _, item := range items {
		p, err := uc.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		view := ItemView{
			ID:          item.ID,
			ProductID:   p.ID,
			SKU:         p.SKU,
			Name:        p.Name,
			Price:       p.Price,
			Quantity:    item.Quantity,
			Subtotal:    p.Price * int64(item.Quantity),
			StockStatus: string(p.StockStatus),
			Available:   p.Available(),
		}
		resp.Items = append(resp.Items, view)

		resp.TotalItems += item.Quantity
		if view.Available {
			resp.TotalPrice += view.Subtotal
		}
	}

	return resp, nil
}

// AddItemRequest 加购请求DTO
type AddItemRequest struct {
	SessionID string
	ProductID uint
	Quantity  int
}

// AddItem 加购商品
// 已在购物车中的商品合并数量
func (uc *UseCase) AddItem(ctx context.Context, req AddItemRequest) (*CartResponse, error) {
	// 1. 校验商品可购买
	p, err := uc.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.Available() {
		return nil, cart.ErrProductUnavailable
	}

	// 2. 已有条目 → 合并数量;没有 → 新建
	existing, err := uc.cartRepo.FindItem(ctx, req.SessionID, req.ProductID)
	switch {
	case err == nil:
		existing.Merge(req.Quantity)
		if err := uc.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, cart.ErrItemNotFound):
		item, err := cart.NewItem(req.SessionID, req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
		if err := uc.cartRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return uc.Get(ctx, req.SessionID)
}

// UpdateItem 修改条目数量
func (uc *UseCase) UpdateItem(ctx context.Context, sessionID string, itemID uint, quantity int) (*CartResponse, error) {
	item, err := uc.cartRepo.FindByID(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := uc.cartRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return uc.Get(ctx, sessionID)
}

// RemoveItem 删除条目
func (uc *UseCase) RemoveItem(ctx context.Context, sessionID string, itemID uint) (*CartResponse, error) {
	if err := uc.cartRepo.Delete(ctx, sessionID, itemID); err != nil {
		return nil, err
	}
	return uc.Get(ctx, sessionID)
}

// Clear 清空购物车
func (uc *UseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.cartRepo.DeleteBySession(ctx, sessionID)
}
