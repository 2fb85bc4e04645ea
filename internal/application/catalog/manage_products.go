package catalog

import (
	"context"
	"time"

	"github.com/xiebiao/storefront/internal/domain/category"
	"github.com/xiebiao/storefront/internal/domain/product"
)

// ManageProductsUseCase 商品管理用例(管理端)
// 设计说明:
// 1. 创建/更新/删除/上下架走这里,业务规则在product.Service
// 2. 每次写操作后失效相关缓存:详情定点失效,列表批量失效
// 3. 指定分类时校验分类存在,避免商品挂到不存在的分类
type ManageProductsUseCase struct {
	productService  product.Service
	productRepo     product.Repository
	categoryService category.Service
	cache           CacheStore
}

// NewManageProductsUseCase 创建商品管理用例
func NewManageProductsUseCase(
	productService product.Service,
	productRepo product.Repository,
	categoryService category.Service,
	cache CacheStore,
) *ManageProductsUseCase {
	return &ManageProductsUseCase{
		productService:  productService,
		productRepo:     productRepo,
		categoryService: categoryService,
		cache:           cache,
	}
}

// SaveProductRequest 商品创建/更新请求DTO
type SaveProductRequest struct {
	SKU               string // 创建时必填,更新时忽略
	Name              string
	Description       string
	Price             int64 // 分
	CategoryID        *uint
	StockQuantity     int // 仅创建时生效,之后只能走库存调整
	LowStockThreshold int
	ReorderLevel      int
}

// ProductView 商品管理视图DTO
type ProductView struct {
	ID                uint   `json:"id"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int64  `json:"price"`
	CategoryID        *uint  `json:"category_id,omitempty"`
	StockQuantity     int    `json:"stock_quantity"`
	StockStatus       string `json:"stock_status"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	ReorderLevel      int    `json:"reorder_level"`
	IsActive          bool   `json:"is_active"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// Create 创建商品
func (uc *ManageProductsUseCase) Create(ctx context.Context, req SaveProductRequest) (*ProductView, error) {
	if err := uc.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	p, err := uc.productService.CreateProduct(ctx, req.SKU, req.Name, req.Description,
		req.Price, req.CategoryID, req.StockQuantity, req.LowStockThreshold, req.ReorderLevel)
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateProductLists(ctx)
	uc.cache.InvalidateCategoryTree(ctx) // 商品数变化影响树节点计数

	return toProductView(p), nil
}

// Update 更新商品信息与阈值
// 库存数量不在这里改:只能通过库存调整接口,保证每次变化都有台账
func (uc *ManageProductsUseCase) Update(ctx context.Context, id uint, req SaveProductRequest) (*ProductView, error) {
	if err := uc.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	p, err := uc.productService.UpdateProduct(ctx, id, req.Name, req.Description,
		req.Price, req.CategoryID, req.LowStockThreshold, req.ReorderLevel)
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateProduct(ctx, id)
	uc.cache.InvalidateProductLists(ctx)
	uc.cache.InvalidateCategoryTree(ctx)

	return toProductView(p), nil
}

// Delete 删除商品(软删除)
func (uc *ManageProductsUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.productService.DeleteProduct(ctx, id); err != nil {
		return err
	}

	uc.cache.InvalidateProduct(ctx, id)
	uc.cache.InvalidateProductLists(ctx)
	uc.cache.InvalidateCategoryTree(ctx)

	return nil
}

// SetActive 上架/下架商品
func (uc *ManageProductsUseCase) SetActive(ctx context.Context, id uint, active bool) (*ProductView, error) {
	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.IsActive = active
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.InvalidateProduct(ctx, id)
	uc.cache.InvalidateProductLists(ctx)
	uc.cache.InvalidateCategoryTree(ctx)

	return toProductView(p), nil
}

// Get 查询单个商品(管理端,含下架商品)
func (uc *ManageProductsUseCase) Get(ctx context.Context, id uint) (*ProductView, error) {
	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductView(p), nil
}

// checkCategory 校验分类存在
func (uc *ManageProductsUseCase) checkCategory(ctx context.Context, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	_, err := uc.categoryService.GetCategory(ctx, *categoryID)
	return err
}

// toProductView 领域实体 → 管理视图DTO
func toProductView(p *product.Product) *ProductView {
	return &ProductView{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		CategoryID:        p.CategoryID,
		StockQuantity:     p.StockQuantity,
		StockStatus:       string(p.StockStatus),
		LowStockThreshold: p.LowStockThreshold,
		ReorderLevel:      p.ReorderLevel,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}
