package catalog

import (
	"context"
	"time"

	"github.com/xiebiao/storefront/internal/domain/category"
)

// ManageCategoriesUseCase 分类管理用例(管理端)
type ManageCategoriesUseCase struct {
	categoryService category.Service
	cache           CacheStore
}

// NewManageCategoriesUseCase 创建分类管理用例
func NewManageCategoriesUseCase(categoryService category.Service, cache CacheStore) *ManageCategoriesUseCase {
	return &ManageCategoriesUseCase{
		categoryService: categoryService,
		cache:           cache,
	}
}

// SaveCategoryRequest 分类创建/更新请求DTO
type SaveCategoryRequest struct {
	Name        string
	Slug        string
	Description string
	ParentID    *uint
}

// CategoryView 分类视图DTO
type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ParentID    *uint  `json:"parent_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Create 创建分类
func (uc *ManageCategoriesUseCase) Create(ctx context.Context, req SaveCategoryRequest) (*CategoryView, error) {
	c, err := uc.categoryService.CreateCategory(ctx, req.Name, req.Slug, req.Description, req.ParentID)
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateCategoryTree(ctx)

	return toCategoryView(c), nil
}

// Update 更新分类
func (uc *ManageCategoriesUseCase) Update(ctx context.Context, id uint, req SaveCategoryRequest) (*CategoryView, error) {
	c, err := uc.categoryService.UpdateCategory(ctx, id, req.Name, req.Slug, req.Description, req.ParentID)
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateCategoryTree(ctx)
	uc.cache.InvalidateProductLists(ctx) // 分类层级变化影响按分类过滤的列表

	return toCategoryView(c), nil
}

// Delete 删除分类(分类下有商品或子分类时拒绝)
func (uc *ManageCategoriesUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.categoryService.DeleteCategory(ctx, id); err != nil {
		return err
	}

	uc.cache.InvalidateCategoryTree(ctx)

	return nil
}

// Get 查询单个分类
func (uc *ManageCategoriesUseCase) Get(ctx context.Context, id uint) (*CategoryView, error) {
	c, err := uc.categoryService.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryView(c), nil
}

// List 查询全部分类(平铺,管理端表格用)
func (uc *ManageCategoriesUseCase) List(ctx context.Context) ([]*CategoryView, error) {
	categories, err := uc.categoryService.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*CategoryView, len(categories))
	for i, c := range categories {
		views[i] = toCategoryView(c)
	}
	return views, nil
}

// toCategoryView 领域实体 → 视图DTO
func toCategoryView(c *category.Category) *CategoryView {
	return &CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
