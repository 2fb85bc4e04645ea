package product

import (
	"time"
)

// StockStatus 库存状态(三值派生枚举)
// 永远由数量和低库存阈值推导，不单独维护：
// - out_of_stock: 数量 == 0
// - low_stock:    0 < 数量 <= 低库存阈值
// - in_stock:     其余
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// StatusFor 由数量和阈值推导库存状态(纯函数)
func StatusFor(quantity, lowStockThreshold int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOutOfStock
	case quantity <= lowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// Product 商品实体(库存调整的聚合根)
// 设计说明:
// 1. SKU作为业务唯一标识(数据库层保证唯一性)
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. StockStatus是冗余存储的派生字段,每次库存变化时重新计算后一并落库,
//    保证列表查询可以直接按状态过滤而不用逐行计算
type Product struct {
	ID                uint
	SKU               string // 商品编码(唯一)
	Name              string
	Description       string
	Price             int64 // 价格(单位:分)
	CategoryID        *uint // 所属分类(可为空)
	StockQuantity     int   // 当前库存(永远>=0)
	StockStatus       StockStatus
	LowStockThreshold int // 低库存阈值
	ReorderLevel      int // 补货点
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewProduct 创建商品(工厂方法)
// 业务规则校验由领域服务负责,这里只做组装和状态推导
func NewProduct(sku, name, description string, price int64, categoryID *uint, stockQuantity, lowStockThreshold, reorderLevel int) *Product {
	now := time.Now()
	return &Product{
		SKU:               sku,
		Name:              name,
		Description:       description,
		Price:             price,
		CategoryID:        categoryID,
		StockQuantity:     stockQuantity,
		StockStatus:       StatusFor(stockQuantity, lowStockThreshold),
		LowStockThreshold: lowStockThreshold,
		ReorderLevel:      reorderLevel,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// SetStockQuantity 设置库存并重算状态(领域行为)
// 业务规则:库存不能为负
func (p *Product) SetStockQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeStock
	}
	p.StockQuantity = quantity
	p.StockStatus = StatusFor(quantity, p.LowStockThreshold)
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新商品基本信息
func (p *Product) UpdateInfo(name, description string, price int64, categoryID *uint) {
	if name != "" {
		p.Name = name
	}
	if description != "" {
		p.Description = description
	}
	if price > 0 {
		p.Price = price
	}
	if categoryID != nil {
		p.CategoryID = categoryID
	}
	p.UpdatedAt = time.Now()
}

// UpdateThresholds 更新阈值并重算状态
// 阈值变化会影响派生状态,必须同步重算
func (p *Product) UpdateThresholds(lowStockThreshold, reorderLevel int) error {
	if lowStockThreshold < 0 || reorderLevel < 0 {
		return ErrInvalidThreshold
	}
	p.LowStockThreshold = lowStockThreshold
	p.ReorderLevel = reorderLevel
	p.StockStatus = StatusFor(p.StockQuantity, lowStockThreshold)
	p.UpdatedAt = time.Now()
	return nil
}

// Available 判断商品是否可购买(上架且有库存)
func (p *Product) Available() bool {
	return p.IsActive && p.StockQuantity > 0
}
