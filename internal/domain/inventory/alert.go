package inventory

import "time"

// AlertType 库存告警类型
type AlertType string

const (
	AlertTypeLowStock AlertType = "low_stock" // 库存低于低库存阈值
	AlertTypeReorder  AlertType = "reorder"   // 库存低于补货点
)

// Alert 库存告警
// 设计说明:
// 1. 同一商品同一类型最多只有一条未解决的告警（仓储层创建前查重）
// 2. 告警是"粘性"的：库存回升不会自动关闭，必须人工Resolve
//    （保留原始行为，告警作为需要人工确认的工单）
type Alert struct {
	ID              uint
	ProductID       uint
	AlertType       AlertType
	CurrentQuantity int // 触发时的库存数量
	Threshold       int // 触发时的阈值
	IsResolved      bool
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}

// NewAlert 创建告警(工厂方法)
func NewAlert(productID uint, alertType AlertType, currentQuantity, threshold int) *Alert {
	return &Alert{
		ProductID:       productID,
		AlertType:       alertType,
		CurrentQuantity: currentQuantity,
		Threshold:       threshold,
		IsResolved:      false,
		CreatedAt:       time.Now(),
	}
}
