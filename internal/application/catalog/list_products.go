package catalog

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/category"
	"github.com/xiebiao/storefront/internal/domain/product"
)

// ListProductsUseCase 商品列表查询用例
// 设计说明:
// 1. 支持分页、搜索、分类/库存状态/价格区间过滤、排序
// 2. 按分类过滤时自动展开子孙分类(选中"电子产品"要包含"手机"下的商品)
// 3. Cache-Aside:命中直接返回缓存的响应,未命中回源数据库后写回
type ListProductsUseCase struct {
	productService  product.Service
	categoryService category.Service
	cache           CacheStore
	listTTL         time.Duration
}

// NewListProductsUseCase 创建商品列表用例
func NewListProductsUseCase(
	productService product.Service,
	categoryService category.Service,
	cache CacheStore,
	listTTL time.Duration,
) *ListProductsUseCase {
	return &ListProductsUseCase{
		productService:  productService,
		categoryService: categoryService,
		cache:           cache,
		listTTL:         listTTL,
	}
}

// ListProductsRequest 商品列表请求DTO
type ListProductsRequest struct {
	Page        int
	PageSize    int
	Keyword     string
	CategoryID  uint   // 0表示不过滤;非0时自动展开子孙分类
	StockStatus string // in_stock | low_stock | out_of_stock
	MinPrice    int64  // 分
	MaxPrice    int64  // 分
	SortBy      string // price_asc | price_desc | name_asc | created_at_desc
	OnlyActive  bool   // 公开接口固定true,管理端可关闭
}

// ProductListItem 列表项DTO(不含description,减少传输量)
type ProductListItem struct {
	ID            uint   `json:"id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	CategoryID    *uint  `json:"category_id,omitempty"`
	StockQuantity int    `json:"stock_quantity"`
	StockStatus   string `json:"stock_status"`
	CreatedAt     string `json:"created_at"`
}

// ListProductsResponse 商品列表响应DTO
type ListProductsResponse struct {
	List       []ProductListItem `json:"list"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// Execute 执行商品列表查询
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	// 1. 参数默认值与范围限制
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20 // 默认每页20条
	}
	if req.PageSize > 100 {
		req.PageSize = 100 // 最大每页100条
	}

	// 2. 尝试缓存(只缓存公开列表,管理端直查数据库)
	var cacheKey string
	if req.OnlyActive {
		cacheKey = listCacheKey(req)
		if data, _ := uc.cache.Get(ctx, cacheKey); data != nil {
			var resp ListProductsResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
			// 缓存内容损坏:按未命中处理
			zap.L().Warn("缓存内容解析失败", zap.String("key", cacheKey))
		}
	}

	// 3. 分类过滤:展开子孙分类
	params := product.ListParams{
		Page:        req.Page,
		PageSize:    req.PageSize,
		Keyword:     req.Keyword,
		StockStatus: product.StockStatus(req.StockStatus),
		OnlyActive:  req.OnlyActive,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		SortBy:      req.SortBy,
	}
	if req.CategoryID > 0 {
		ids, err := uc.categoryService.DescendantIDs(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		params.CategoryIDs = ids
	}

	// 4. 查询
	products, total, err := uc.productService.ListProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	// 5. 转换为DTO
	list := make([]ProductListItem, len(products))
	for i, p := range products {
		list[i] = ProductListItem{
			ID:            p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			Price:         p.Price,
			CategoryID:    p.CategoryID,
			StockQuantity: p.StockQuantity,
			StockStatus:   string(p.StockStatus),
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		}
	}

	totalPages := int(total) / req.PageSize
	if int(total)%req.PageSize != 0 {
		totalPages++
	}

	resp := &ListProductsResponse{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}

	// 6. 写回缓存
	if cacheKey != "" {
		if data, err := json.Marshal(resp); err == nil {
			uc.cache.Set(ctx, cacheKey, data, uc.listTTL)
		}
	}

	return resp, nil
}
