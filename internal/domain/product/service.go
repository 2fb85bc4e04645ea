package product

import (
	"context"
	"regexp"
)

// Service 商品领域服务接口
// 封装商品的业务规则校验(SKU格式/唯一性、价格范围、阈值合法性)
type Service interface {
	// CreateProduct 创建商品
	// 业务规则:
	// - SKU格式必须合法(3-64位字母数字和连字符)且不能重复
	// - 价格必须大于0
	// - 初始库存、阈值必须>=0
	CreateProduct(ctx context.Context, sku, name, description string, price int64, categoryID *uint, stockQuantity, lowStockThreshold, reorderLevel int) (*Product, error)

	// GetProduct 根据ID获取商品
	GetProduct(ctx context.Context, id uint) (*Product, error)

	// UpdateProduct 更新商品信息与阈值
	UpdateProduct(ctx context.Context, id uint, name, description string, price int64, categoryID *uint, lowStockThreshold, reorderLevel int) (*Product, error)

	// DeleteProduct 删除商品(软删除)
	DeleteProduct(ctx context.Context, id uint) error

	// ListProducts 分页查询商品列表
	ListProducts(ctx context.Context, params ListParams) ([]*Product, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建商品领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// skuPattern SKU格式:3-64位,字母数字开头,允许连字符和下划线
var skuPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{2,63}$`)

// CreateProduct 创建商品
func (s *service) CreateProduct(ctx context.Context, sku, name, description string, price int64, categoryID *uint, stockQuantity, lowStockThreshold, reorderLevel int) (*Product, error) {
	// 1. 格式与范围校验
	if !skuPattern.MatchString(sku) {
		return nil, ErrInvalidSKU
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}
	if lowStockThreshold < 0 || reorderLevel < 0 {
		return nil, ErrInvalidThreshold
	}

	// 2. SKU唯一性检查(数据库唯一索引兜底)
	existing, err := s.repo.FindBySKU(ctx, sku)
	if err == nil && existing != nil {
		return nil, ErrSKUDuplicate
	}
	if err != nil && err != ErrProductNotFound {
		return nil, err
	}

	// 3. 创建并持久化
	p := NewProduct(sku, name, description, price, categoryID, stockQuantity, lowStockThreshold, reorderLevel)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetProduct 根据ID获取商品
func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProduct 更新商品信息与阈值
func (s *service) UpdateProduct(ctx context.Context, id uint, name, description string, price int64, categoryID *uint, lowStockThreshold, reorderLevel int) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.UpdateInfo(name, description, price, categoryID)
	if err := p.UpdateThresholds(lowStockThreshold, reorderLevel); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct 删除商品
func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListProducts 分页查询商品列表
func (s *service) ListProducts(ctx context.Context, params ListParams) ([]*Product, int64, error) {
	return s.repo.List(ctx, params)
}
