package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/product"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// productRepository 商品仓储实现(SQLite)
// 设计说明:
// 1. 实现domain/product/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如SKU重复),转换为业务错误
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

// Create 创建商品
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrSKUDuplicate
		}
		return apperrors.Wrap(err, "创建商品失败")
	}

	// 回填自增ID
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找商品
func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品失败")
	}

	return toProductEntity(&model), nil
}

// FindByIDForUpdate 在事务中查找商品用于库存修改
// SQLite不支持SELECT FOR UPDATE,写锁由事务本身持有(单写者模型),
// 调用方必须处于TxManager事务内,否则读到的库存可能被并发调整覆盖
func (r *productRepository) FindByIDForUpdate(ctx context.Context, id uint) (*product.Product, error) {
	return r.FindByID(ctx, id)
}

// FindBySKU 根据SKU查找商品
func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).Where("sku = ?", sku).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品失败")
	}

	return toProductEntity(&model), nil
}

// Update 更新商品信息
func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)
	model.ID = p.ID
	model.CreatedAt = p.CreatedAt

	// 使用Save更新所有字段
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrSKUDuplicate
		}
		return apperrors.Wrap(err, "更新商品失败")
	}

	p.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateStock 更新库存数量与派生状态
// 数量和状态在同一条UPDATE中落库,避免两列短暂不一致
func (r *productRepository) UpdateStock(ctx context.Context, id uint, quantity int, status product.StockStatus) error {
	result := getDB(ctx, r.db).Model(&ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_quantity": quantity,
			"stock_status":   string(status),
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// Delete 删除商品(软删除)
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ProductModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除商品失败")
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// List 分页查询商品列表
func (r *productRepository) List(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	var models []ProductModel
	var total int64

	// 构建查询
	query := getDB(ctx, r.db).Model(&ProductModel{})

	// 关键词搜索(搜索名称、SKU、描述)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("name LIKE ? OR sku LIKE ? OR description LIKE ?", keyword, keyword, keyword)
	}

	// 分类过滤(已含子孙分类展开)
	if len(params.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", params.CategoryIDs)
	}

	// 库存状态过滤
	if params.StockStatus != "" {
		query = query.Where("stock_status = ?", string(params.StockStatus))
	}

	// 上架过滤(公开接口固定开启)
	if params.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	// 价格区间过滤(分)
	if params.MinPrice > 0 {
		query = query.Where("price >= ?", params.MinPrice)
	}
	if params.MaxPrice > 0 {
		query = query.Where("price <= ?", params.MaxPrice)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询商品总数失败")
	}

	// 排序
	switch params.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "name_asc":
		query = query.Order("name ASC")
	default:
		query = query.Order("created_at DESC") // 默认按创建时间降序
	}

	// 分页
	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	// 查询数据
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询商品列表失败")
	}

	// 转换为领域实体
	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}

	return products, total, nil
}

// CountByCategory 统计各分类下的商品数(分类树展示用)
func (r *productRepository) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	type row struct {
		CategoryID *uint
		Count      int64
	}
	var rows []row

	err := getDB(ctx, r.db).Model(&ProductModel{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计分类商品数失败")
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		if r.CategoryID != nil {
			counts[*r.CategoryID] = r.Count
		}
	}
	return counts, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toProductModel 领域实体 → GORM模型
func toProductModel(p *product.Product) *ProductModel {
	return &ProductModel{
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
	}
}

// toProductEntity GORM模型 → 领域实体
func toProductEntity(model *ProductModel) *product.Product {
	return &product.Product{
		ID:                model.ID,
		SKU:               model.SKU,
		Name:              model.Name,
		Description:       model.Description,
		Price:             model.Price,
		CategoryID:        model.CategoryID,
		StockQuantity:     model.StockQuantity,
		StockStatus:       product.StockStatus(model.StockStatus),
		LowStockThreshold: model.LowStockThreshold,
		ReorderLevel:      model.ReorderLevel,
		IsActive:          model.IsActive,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}
