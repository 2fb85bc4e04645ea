package dto

// AddCartItemRequest HTTP加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required" example:"1"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=99" example:"2"`
}

// UpdateCartItemRequest HTTP修改购物车数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=99" example:"3"`
}

// WishlistRequest HTTP心愿单收藏请求
type WishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required" example:"1"`
}
