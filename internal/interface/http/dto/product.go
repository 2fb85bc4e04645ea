package dto

import "fmt"

// ListProductsRequest HTTP商品列表请求
type ListProductsRequest struct {
	Page        int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword     string `form:"keyword" binding:"omitempty,max=100" example:"耳机"`
	CategoryID  uint   `form:"category_id" binding:"omitempty" example:"3"`
	StockStatus string `form:"stock_status" binding:"omitempty,oneof=in_stock low_stock out_of_stock" example:"in_stock"`
	MinPrice    int64  `form:"min_price" binding:"omitempty,min=0" example:"1000"`
	MaxPrice    int64  `form:"max_price" binding:"omitempty,min=0" example:"99900"`
	SortBy      string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc name_asc created_at_desc" example:"created_at_desc"`
}

// SaveProductRequest HTTP商品创建/更新请求(管理端)
// validator tag说明:
// - sku: 创建时必填;更新时忽略该字段
// - price单位为分
type SaveProductRequest struct {
	SKU               string `json:"sku" binding:"omitempty,min=3,max=64" example:"WH-1000XM5"`
	Name              string `json:"name" binding:"required,max=200" example:"降噪耳机"`
	Description       string `json:"description" binding:"max=5000" example:"旗舰降噪"`
	Price             int64  `json:"price" binding:"required,min=1,max=99999999" example:"229900"`
	CategoryID        *uint  `json:"category_id" binding:"omitempty" example:"3"`
	StockQuantity     int    `json:"stock_quantity" binding:"min=0" example:"100"`
	LowStockThreshold int    `json:"low_stock_threshold" binding:"min=0" example:"10"`
	ReorderLevel      int    `json:"reorder_level" binding:"min=0" example:"5"`
}

// SetActiveRequest HTTP上下架请求
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required" example:"true"`
}

// SaveCategoryRequest HTTP分类创建/更新请求(管理端)
type SaveCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"电子产品"`
	Slug        string `json:"slug" binding:"required,max=100" example:"electronics"`
	Description string `json:"description" binding:"max=2000" example:"数码与电子产品"`
	ParentID    *uint  `json:"parent_id" binding:"omitempty" example:"1"`
}

// CreateReviewRequest HTTP创建评论请求
type CreateReviewRequest struct {
	Author  string `json:"author" binding:"required,max=100" example:"小王"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Title   string `json:"title" binding:"max=200" example:"物超所值"`
	Content string `json:"content" binding:"required,max=5000" example:"降噪效果很好"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
