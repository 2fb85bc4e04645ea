package catalog

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/category"
	"github.com/xiebiao/storefront/internal/domain/product"
)

// CategoryTreeUseCase 分类树查询用例
// 前台分类导航:全部分类组装成树,节点带(含子孙的)商品数
type CategoryTreeUseCase struct {
	categoryService category.Service
	productRepo     product.Repository
	cache           CacheStore
	treeTTL         time.Duration
}

// NewCategoryTreeUseCase 创建分类树用例
func NewCategoryTreeUseCase(
	categoryService category.Service,
	productRepo product.Repository,
	cache CacheStore,
	treeTTL time.Duration,
) *CategoryTreeUseCase {
	return &CategoryTreeUseCase{
		categoryService: categoryService,
		productRepo:     productRepo,
		cache:           cache,
		treeTTL:         treeTTL,
	}
}

// CategoryTreeResponse 分类树响应DTO
type CategoryTreeResponse struct {
	Tree []*category.TreeNode `json:"tree"`
}

// Execute 执行分类树查询
func (uc *CategoryTreeUseCase) Execute(ctx context.Context) (*CategoryTreeResponse, error) {
	// 1. 尝试缓存
	if data, _ := uc.cache.Get(ctx, treeCacheKey); data != nil {
		var resp CategoryTreeResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		zap.L().Warn("缓存内容解析失败", zap.String("key", treeCacheKey))
	}

	// 2. 加载全部分类与各分类商品数
	categories, err := uc.categoryService.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := uc.productRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	// 3. 内存组装
	resp := &CategoryTreeResponse{
		Tree: category.BuildTree(categories, counts),
	}

	// 4. 写回缓存
	if data, err := json.Marshal(resp); err == nil {
		uc.cache.Set(ctx, treeCacheKey, data, uc.treeTTL)
	}

	return resp, nil
}
