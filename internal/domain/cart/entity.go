package cart

import "time"

// 购物车数量限制
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Item 购物车条目
// 购物车按会话归属:前端首次访问时由中间件分配X-Session-ID,
// 同一会话同一商品只有一行,重复添加合并数量
type Item struct {
	ID        uint
	SessionID string
	ProductID uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem 创建购物车条目
func NewItem(sessionID string, productID uint, quantity int) (*Item, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}
	now := time.Now()
	return &Item{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetQuantity 修改数量
func (i *Item) SetQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// Merge 合并数量(重复添加时),超出上限按上限截断
func (i *Item) Merge(quantity int) {
	total := i.Quantity + quantity
	if total > MaxQuantity {
		total = MaxQuantity
	}
	i.Quantity = total
	i.UpdatedAt = time.Now()
}
