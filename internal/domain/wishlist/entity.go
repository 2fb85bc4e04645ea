package wishlist

import "time"

// Item 心愿单条目
// 与购物车同样按会话归属;没有数量概念,同一商品最多一条
type Item struct {
	ID        uint
	SessionID string
	ProductID uint
	CreatedAt time.Time
}

// NewItem 创建心愿单条目
func NewItem(sessionID string, productID uint) *Item {
	return &Item{
		SessionID: sessionID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
}
