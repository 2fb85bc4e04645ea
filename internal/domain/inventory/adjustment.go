package inventory

import (
	"time"
)

// AdjustmentType 库存调整类型
// 七种类型对库存的作用各不相同，符号由类型决定，调用方只传数量：
// - purchase/return: 入库，库存增加
// - sale/damage/theft: 出库，库存减少（不足时拒绝）
// - adjustment: 盘点校正，库存被设置为绝对值
// - transfer: 调拨，数量本身带符号（正入负出）
type AdjustmentType string

const (
	AdjustmentTypePurchase   AdjustmentType = "purchase"   // 采购入库
	AdjustmentTypeSale       AdjustmentType = "sale"       // 销售出库
	AdjustmentTypeReturn     AdjustmentType = "return"     // 退货入库
	AdjustmentTypeDamage     AdjustmentType = "damage"     // 损坏出库
	AdjustmentTypeTheft      AdjustmentType = "theft"      // 丢失出库
	AdjustmentTypeAdjustment AdjustmentType = "adjustment" // 盘点校正(绝对值)
	AdjustmentTypeTransfer   AdjustmentType = "transfer"   // 调拨(带符号增量)
)

// AdjustmentTypes 所有合法的调整类型（导出供校验和文档使用）
var AdjustmentTypes = []AdjustmentType{
	AdjustmentTypePurchase,
	AdjustmentTypeSale,
	AdjustmentTypeReturn,
	AdjustmentTypeDamage,
	AdjustmentTypeTheft,
	AdjustmentTypeAdjustment,
	AdjustmentTypeTransfer,
}

// ParseAdjustmentType 解析调整类型
// 类型不在七种之内时返回ErrInvalidAdjustmentType
func ParseAdjustmentType(s string) (AdjustmentType, error) {
	t := AdjustmentType(s)
	if !t.Valid() {
		return "", ErrInvalidAdjustmentType
	}
	return t, nil
}

// Valid 判断是否为合法类型
func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentTypePurchase, AdjustmentTypeSale, AdjustmentTypeReturn,
		AdjustmentTypeDamage, AdjustmentTypeTheft,
		AdjustmentTypeAdjustment, AdjustmentTypeTransfer:
		return true
	}
	return false
}

// ValidateQuantity 校验数量与类型的搭配
// 业务规则：
// - transfer允许带符号（但不允许为0）
// - adjustment是绝对值，允许0（盘点清零）但不允许负数
// - 其余类型数量必须为正（符号由类型决定）
func (t AdjustmentType) ValidateQuantity(quantity int) error {
	switch t {
	case AdjustmentTypeTransfer:
		if quantity == 0 {
			return ErrInvalidQuantity
		}
	case AdjustmentTypeAdjustment:
		if quantity < 0 {
			return ErrInvalidQuantity
		}
	default:
		if quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// Apply 计算调整后的库存数量
// 业务规则：结果不能为负，出库类调整超出现有库存时返回ErrInsufficientStock
func (t AdjustmentType) Apply(current, quantity int) (int, error) {
	if err := t.ValidateQuantity(quantity); err != nil {
		return 0, err
	}

	var next int
	switch t {
	case AdjustmentTypePurchase, AdjustmentTypeReturn:
		next = current + quantity
	case AdjustmentTypeSale, AdjustmentTypeDamage, AdjustmentTypeTheft:
		next = current - quantity
	case AdjustmentTypeAdjustment:
		next = quantity
	case AdjustmentTypeTransfer:
		next = current + quantity
	default:
		return 0, ErrInvalidAdjustmentType
	}

	if next < 0 {
		return 0, ErrInsufficientStock
	}
	return next, nil
}

// Adjustment 库存调整台账记录（只增不改）
// 设计说明:
// 1. 台账是审计凭证，写入后永不更新、永不删除
// 2. Quantity保存调用方提交的原始数量（transfer可为负），
//    实际库存变化由Type+Quantity在Apply中推导
// 3. 与商品行的数量更新必须在同一事务中落库
type Adjustment struct {
	ID        uint
	ProductID uint
	Type      AdjustmentType
	Quantity  int    // 调用方提交的数量（符号语义取决于Type）
	Reason    string // 调整原因(必填)
	Notes     string // 备注(可选)
	CreatedBy string // 操作人(可选)
	CreatedAt time.Time
}

// NewAdjustment 创建台账记录(工厂方法)
// 业务规则：reason必填，类型与数量必须合法
func NewAdjustment(productID uint, t AdjustmentType, quantity int, reason, notes, createdBy string) (*Adjustment, error) {
	if !t.Valid() {
		return nil, ErrInvalidAdjustmentType
	}
	if err := t.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrReasonRequired
	}

	return &Adjustment{
		ProductID: productID,
		Type:      t,
		Quantity:  quantity,
		Reason:    reason,
		Notes:     notes,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}, nil
}
