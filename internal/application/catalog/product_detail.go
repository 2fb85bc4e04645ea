package catalog

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/category"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/domain/review"
)

// ProductDetailUseCase 商品详情查询用例
// 详情页一次拿全:商品信息 + 所属分类 + 评论聚合
type ProductDetailUseCase struct {
	productService product.Service
	categoryRepo   category.Repository
	reviewRepo     review.Repository
	cache          CacheStore
	detailTTL      time.Duration
}

// NewProductDetailUseCase 创建商品详情用例
func NewProductDetailUseCase(
	productService product.Service,
	categoryRepo category.Repository,
	reviewRepo review.Repository,
	cache CacheStore,
	detailTTL time.Duration,
) *ProductDetailUseCase {
	return &ProductDetailUseCase{
		productService: productService,
		categoryRepo:   categoryRepo,
		reviewRepo:     reviewRepo,
		cache:          cache,
		detailTTL:      detailTTL,
	}
}

// CategoryBrief 详情页的分类摘要
type CategoryBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductDetailResponse 商品详情响应DTO
type ProductDetailResponse struct {
	ID            uint           `json:"id"`
	SKU           string         `json:"sku"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         int64          `json:"price"`
	Category      *CategoryBrief `json:"category,omitempty"`
	StockQuantity int            `json:"stock_quantity"`
	StockStatus   string         `json:"stock_status"`
	IsActive      bool           `json:"is_active"`
	ReviewCount   int64          `json:"review_count"`
	AverageRating float64        `json:"average_rating"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

// Execute 执行商品详情查询
func (uc *ProductDetailUseCase) Execute(ctx context.Context, productID uint) (*ProductDetailResponse, error) {
	// 1. 尝试缓存
	cacheKey := detailCacheKey(productID)
	if data, _ := uc.cache.Get(ctx, cacheKey); data != nil {
		var resp ProductDetailResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		zap.L().Warn("缓存内容解析失败", zap.String("key", cacheKey))
	}

	// 2. 查商品
	p, err := uc.productService.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp := &ProductDetailResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		StockStatus:   string(p.StockStatus),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}

	// 3. 查分类(分类已被删除时详情页不带分类,不报错)
	if p.CategoryID != nil {
		if c, err := uc.categoryRepo.FindByID(ctx, *p.CategoryID); err == nil {
			resp.Category = &CategoryBrief{ID: c.ID, Name: c.Name, Slug: c.Slug}
		}
	}

	// 4. 查评论聚合
	summary, err := uc.reviewRepo.SummaryByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp.ReviewCount = summary.Count
	resp.AverageRating = summary.AverageRating

	// 5. 写回缓存
	if data, err := json.Marshal(resp); err == nil {
		uc.cache.Set(ctx, cacheKey, data, uc.detailTTL)
	}

	return resp, nil
}
